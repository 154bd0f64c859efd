package fuzztests

import (
	"testing"

	"lust/internal/diag"
	"lust/internal/lexer"
	"lust/internal/source"
	"lust/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.lust", clampInput(input)))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
		size := uint32(len(file.Content)) //nolint:gosec // clamped above

		var prevEnd uint32
		invalid := 0
		// каждый токен съедает хотя бы байт, так что токенов не больше, чем байтов
		for n := 0; ; n++ {
			if n > len(file.Content)+1 {
				t.Fatalf("lexer did not reach END after %d tokens", n)
			}
			tok := lx.Next()
			if tok.Span.Start < prevEnd || tok.Span.End < tok.Span.Start || tok.Span.End > size {
				t.Fatalf("bad span %v after %d (size %d)", tok.Span, prevEnd, size)
			}
			prevEnd = tok.Span.End
			if tok.Kind == token.Invalid {
				invalid++
			}
			if tok.Kind == token.EOF {
				break
			}
			if tok.Span.Empty() {
				t.Fatalf("empty non-END token %s at %d", tok.Kind, tok.Span.Start)
			}
		}
		if lx.Next().Kind != token.EOF {
			t.Fatal("END must be sticky")
		}
		if bag.Len() != min(invalid, 64) {
			t.Fatalf("reported %d lexical errors, saw %d invalid tokens", bag.Len(), invalid)
		}
	})
}
