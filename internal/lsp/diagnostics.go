package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"lust/internal/diag"
	"lust/internal/source"
)

const diagnosticSource = "lust"

func severityFor(sev diag.Severity) protocol.DiagnosticSeverity {
	switch sev {
	case diag.SevError:
		return protocol.DiagnosticSeverityError
	case diag.SevWarning:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityInformation
	}
}

// convertDiagnostics переводит Bag в LSP-диагностики; заметки становятся related information.
// Never returns nil: пустой список очищает диагностики в редакторе.
func convertDiagnostics(bag *diag.Bag, fs *source.FileSet, uri protocol.DocumentUri) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, bag.Len())
	src := diagnosticSource
	for _, d := range bag.Items() {
		sev := severityFor(d.Severity)
		file := fs.Get(d.Primary.File)
		item := protocol.Diagnostic{
			Range:    rangeForSpan(file, d.Primary),
			Severity: &sev,
			Code:     &protocol.IntegerOrString{Value: d.Code.ID()},
			Source:   &src,
			Message:  d.Message,
		}
		for _, n := range d.Notes {
			item.RelatedInformation = append(item.RelatedInformation, protocol.DiagnosticRelatedInformation{
				Location: protocol.Location{URI: uri, Range: rangeForSpan(fs.Get(n.Span.File), n.Span)},
				Message:  n.Msg,
			})
		}
		out = append(out, item)
	}
	return out
}
