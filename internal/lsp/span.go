package lsp

import (
	"sort"
	"unicode/utf8"

	"fortio.org/safecast"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"lust/internal/source"
)

func safeUInteger(n int) protocol.UInteger {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[protocol.UInteger](n)
	if err != nil {
		return ^protocol.UInteger(0)
	}
	return v
}

// positionForOffset: байтовый офсет → строка (0-based) и колонка в UTF-16 единицах.
func positionForOffset(file *source.File, offset uint32) protocol.Position {
	if file == nil {
		return protocol.Position{}
	}
	contentLen := safeUInteger(len(file.Content))
	if offset > contentLen {
		offset = contentLen
	}
	lineIdx := file.LineIdx
	idx := sort.Search(len(lineIdx), func(i int) bool { return lineIdx[i] >= offset })
	var lineStart uint32
	if idx > 0 {
		lineStart = lineIdx[idx-1] + 1
	}
	var units protocol.UInteger
	for off := lineStart; off < offset; {
		r, size := utf8.DecodeRune(file.Content[off:offset])
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
		off += safeUInteger(size)
	}
	return protocol.Position{Line: safeUInteger(idx), Character: units}
}

func rangeForSpan(file *source.File, span source.Span) protocol.Range {
	if file == nil {
		return protocol.Range{}
	}
	return protocol.Range{
		Start: positionForOffset(file, span.Start),
		End:   positionForOffset(file, span.End),
	}
}
