package fix

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lust/internal/diag"
	"lust/internal/source"
)

func loadTemp(t *testing.T, content string) (*source.FileSet, source.FileID, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.lust")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return fs, id, path
}

func missingSemicolon(id source.FileID, at uint32) diag.Diagnostic {
	sp := source.Span{File: id, Start: at, End: at}
	d := diag.NewError(diag.SynExpectSemicolon, sp, "expected ';'")
	f := InsertText("insert `;`", sp, ";")
	return d.WithFix(f.Title, f.Edits...)
}

func TestApply_AllWritesFile(t *testing.T) {
	fs, id, path := loadTemp(t, "let a = 1\nlet b = 2\n")
	diags := []diag.Diagnostic{missingSemicolon(id, 19), missingSemicolon(id, 9)}

	res, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeAll})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 2 || len(res.Skipped) != 0 {
		t.Fatalf("applied=%d skipped=%v", len(res.Applied), res.Skipped)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "let a = 1;\nlet b = 2;\n" {
		t.Fatalf("file = %q", got)
	}
	if len(res.FileChanges) != 1 || res.FileChanges[0].Path != "main.lust" || res.FileChanges[0].EditCount != 2 {
		t.Fatalf("changes = %+v", res.FileChanges)
	}
}

func TestApply_OnceTakesEarliest(t *testing.T) {
	fs, id, path := loadTemp(t, "let a = 1\nlet b = 2\n")
	diags := []diag.Diagnostic{missingSemicolon(id, 19), missingSemicolon(id, 9)}

	res, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeOnce, DryRun: true})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if string(res.FileChanges[0].Content) != "let a = 1;\nlet b = 2\n" {
		t.Fatalf("content = %q", res.FileChanges[0].Content)
	}
	// dry run не трогает диск
	got, _ := os.ReadFile(path)
	if string(got) != "let a = 1\nlet b = 2\n" {
		t.Fatalf("dry run wrote file: %q", got)
	}
}

func TestApply_SkipsConflicts(t *testing.T) {
	fs, id, _ := loadTemp(t, "let value = 1;")
	name := source.Span{File: id, Start: 4, End: 9}
	d := diag.NewError(diag.SynUnexpectedToken, name, "bad name")
	first := ReplaceSpan("rename", name, "x")
	second := DeleteSpan("drop", source.Span{File: id, Start: 6, End: 12})
	d = d.WithFix(first.Title, first.Edits...).WithFix(second.Title, second.Edits...)

	res, err := Apply(fs, []diag.Diagnostic{d}, ApplyOptions{Mode: ApplyModeAll, DryRun: true})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 1 || len(res.Skipped) != 1 {
		t.Fatalf("applied=%v skipped=%v", res.Applied, res.Skipped)
	}
	if string(res.FileChanges[0].Content) != "let x = 1;" {
		t.Fatalf("content = %q", res.FileChanges[0].Content)
	}
}

func TestApply_WrapAndVirtual(t *testing.T) {
	fs, id, _ := loadTemp(t, "a + b")
	w := WrapWith("parenthesize", source.Span{File: id, Start: 0, End: 5}, "(", ")")
	d := diag.New(diag.SevWarning, diag.SynUnexpectedToken, source.Span{File: id}, "wrap").WithFix(w.Title, w.Edits...)
	res, err := Apply(fs, []diag.Diagnostic{d}, ApplyOptions{Mode: ApplyModeAll, DryRun: true})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if string(res.FileChanges[0].Content) != "(a + b)" {
		t.Fatalf("content = %q", res.FileChanges[0].Content)
	}

	vid := fs.AddVirtual("<mem>", []byte("x"))
	_, err = Apply(fs, []diag.Diagnostic{missingSemicolon(vid, 1)}, ApplyOptions{Mode: ApplyModeAll})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("virtual file err = %v, want ErrNoFixes", err)
	}
}

func TestApply_NoFixes(t *testing.T) {
	fs, id, _ := loadTemp(t, "let a = 1;")
	d := diag.NewError(diag.SynUnexpectedToken, source.Span{File: id}, "no fix")
	if _, err := Apply(fs, []diag.Diagnostic{d}, ApplyOptions{}); !errors.Is(err, ErrNoFixes) {
		t.Fatalf("err = %v", err)
	}
}

func TestSpansConflict(t *testing.T) {
	mk := func(s, e uint32) diag.FixEdit { return diag.FixEdit{Span: source.Span{Start: s, End: e}} }
	cases := []struct {
		a, b diag.FixEdit
		want bool
	}{
		{mk(3, 3), mk(3, 3), false},
		{mk(3, 3), mk(1, 5), true},
		{mk(1, 5), mk(5, 5), false},
		{mk(1, 5), mk(4, 8), true},
		{mk(1, 4), mk(4, 8), false},
	}
	for _, tc := range cases {
		if got := spansConflict(tc.a, tc.b); got != tc.want {
			t.Errorf("spansConflict(%v, %v) = %v, want %v", tc.a.Span, tc.b.Span, got, tc.want)
		}
	}
}
