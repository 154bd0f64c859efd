// Package diag defines the diagnostic model shared by the lexer, the parser and the tools around them.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error (severity.go).
//   - Code – compact numeric identifier with a stable string form (codes.go).
//   - Message – short human text.
//   - Primary – the source.Span pointing at the problem.
//   - Notes – optional secondary spans.
//   - Fixes – optional text edits.
//
// # Emitting diagnostics
//
// Producers talk to a Reporter and never to storage. BagReporter collects into a Bag,
// MultiReporter fans out. ReportBuilder is the chained form used when a diagnostic needs notes.
//
// Diagnostics are never deduplicated or suppressed here: every error site produces one entry.
// Limits (Bag capacity, parser MaxErrors) only cap what is stored.
//
// Package diag does no formatting or IO; see internal/diagfmt for renderers.
package diag
