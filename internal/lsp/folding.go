package lsp

import (
	"sort"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"lust/internal/lexer"
	"lust/internal/source"
	"lust/internal/token"
)

// buildFoldingRanges парует фигурные скобки по токенам: так складываются и
// блоки, которые парсер не смог разобрать. Однострочные пары пропускаются.
func buildFoldingRanges(file *source.File) []protocol.FoldingRange {
	if file == nil || len(file.Content) == 0 {
		return nil
	}
	lx := lexer.New(file, lexer.Options{})
	var (
		stack  []protocol.UInteger
		ranges []protocol.FoldingRange
	)
	commentStart, commentEnd, inComments := protocol.UInteger(0), protocol.UInteger(0), false
	flushComments := func() {
		if inComments && commentEnd > commentStart {
			kind := string(protocol.FoldingRangeKindComment)
			ranges = append(ranges, protocol.FoldingRange{StartLine: commentStart, EndLine: commentEnd, Kind: &kind})
		}
		inComments = false
	}
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		line := positionForOffset(file, tok.Span.Start).Line
		if tok.Kind == token.Comment {
			if inComments && line == commentEnd+1 {
				commentEnd = line
			} else {
				flushComments()
				commentStart, commentEnd, inComments = line, line, true
			}
			continue
		}
		flushComments()
		switch tok.Kind {
		case token.LBrace:
			stack = append(stack, line)
		case token.RBrace:
			if len(stack) == 0 {
				continue
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if open < line {
				ranges = append(ranges, protocol.FoldingRange{StartLine: open, EndLine: line})
			}
		}
	}
	flushComments()
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].StartLine == ranges[j].StartLine {
			return ranges[i].EndLine < ranges[j].EndLine
		}
		return ranges[i].StartLine < ranges[j].StartLine
	})
	return ranges
}
