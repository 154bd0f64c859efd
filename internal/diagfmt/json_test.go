package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"lust/internal/diag"
	"lust/internal/source"
)

func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lust", []byte("fn main() {\n\tlet x = \"unterminated\n}"))

	bag := diag.NewBag(0)
	bag.Add(diag.New(diag.SevError, diag.LexUnterminatedString, source.Span{File: fileID, Start: 21, End: 34}, "unterminated string literal").
		WithNote(source.Span{File: fileID, Start: 0, End: 2}, "in this function"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
	}
	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %+v", output)
	}
	d := output.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "LEX1002" {
		t.Errorf("unexpected severity/code: %s %s", d.Severity, d.Code)
	}
	if d.Location.File != "test.lust" || d.Location.StartLine != 2 || d.Location.StartCol != 10 {
		t.Errorf("unexpected location: %+v", d.Location)
	}
	if len(d.Notes) != 1 || d.Notes[0].Location.StartLine != 1 {
		t.Errorf("unexpected notes: %+v", d.Notes)
	}
}

func TestJSONMaxAndPositions(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.lust", []byte("abc"))
	bag := diag.NewBag(0)
	for range 3 {
		bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: fileID, Start: 1, End: 2}, "x"))
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Fatalf("expected 2 entries, got %d", out.Count)
	}
	if out.Diagnostics[0].Location.StartLine != 0 {
		t.Errorf("positions must be omitted unless requested")
	}
}

func TestJSONFixPreview(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.lust", []byte("let x = 1\nlet y = 2;\n"))
	sp := source.Span{File: fileID, Start: 9, End: 9}
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynExpectSemicolon, sp, "expected ';'").WithFix("insert ';'", diag.FixEdit{Span: sp, NewText: ";"}))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludeFixes: true, IncludePreviews: true})
	fixes := out.Diagnostics[0].Fixes
	if len(fixes) != 1 || len(fixes[0].Edits) != 1 {
		t.Fatalf("unexpected fixes: %+v", fixes)
	}
	edit := fixes[0].Edits[0]
	if len(edit.BeforeLines) != 1 || edit.BeforeLines[0] != "let x = 1" || edit.AfterLines[0] != "let x = 1;" {
		t.Fatalf("unexpected preview: %+v", edit)
	}
}
