package fix

import (
	"lust/internal/diag"
	"lust/internal/source"
)

// InsertText creates fix that inserts text at span (Span.Start == Span.End).
func InsertText(title string, at source.Span, text string) diag.Fix {
	at.End = at.Start
	return diag.Fix{
		Title: title,
		Edits: []diag.FixEdit{{Span: at, NewText: text}},
	}
}

// DeleteSpan removes text covered by span.
func DeleteSpan(title string, span source.Span) diag.Fix {
	return diag.Fix{
		Title: title,
		Edits: []diag.FixEdit{{Span: span}},
	}
}

// ReplaceSpan replaces text covered by span with newText.
func ReplaceSpan(title string, span source.Span, newText string) diag.Fix {
	return diag.Fix{
		Title: title,
		Edits: []diag.FixEdit{{Span: span, NewText: newText}},
	}
}

// WrapWith surrounds span with prefix and suffix insertions.
func WrapWith(title string, span source.Span, prefix, suffix string) diag.Fix {
	return diag.Fix{
		Title: title,
		Edits: []diag.FixEdit{
			{Span: source.Span{File: span.File, Start: span.Start, End: span.Start}, NewText: prefix},
			{Span: source.Span{File: span.File, Start: span.End, End: span.End}, NewText: suffix},
		},
	}
}
