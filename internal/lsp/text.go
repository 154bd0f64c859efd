package lsp

import (
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// applyChanges применяет изменения по порядку. Поддерживаются оба вида:
// полная замена текста и правка диапазона (UTF-16 позиции).
func applyChanges(text string, changes []any) string {
	for _, raw := range changes {
		switch change := raw.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = change.Text
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				text = change.Text
				continue
			}
			start := offsetForPosition(text, change.Range.Start)
			end := max(offsetForPosition(text, change.Range.End), start)
			text = text[:start] + change.Text + text[end:]
		}
	}
	return text
}

// offsetForPosition переводит LSP-позицию в байтовый офсет text.
// Позиции за концом строки или текста прижимаются к ним.
func offsetForPosition(text string, pos protocol.Position) int {
	line := protocol.UInteger(0)
	i := 0
	for i < len(text) && line < pos.Line {
		if text[i] == '\n' {
			line++
		}
		i++
	}
	if line < pos.Line {
		return len(text)
	}
	var units protocol.UInteger
	for i < len(text) && text[i] != '\n' {
		r, size := utf8.DecodeRuneInString(text[i:])
		need := protocol.UInteger(1)
		if r > 0xFFFF {
			need = 2
		}
		if units+need > pos.Character {
			break
		}
		units += need
		i += size
	}
	return i
}
