package source

import "testing"

func TestLocate(t *testing.T) {
	src := []byte("let a = 1;\n  fn f() {}\n\nx")
	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{4, 1, 5},
		{10, 1, 11}, // сам '\n'
		{11, 2, 1},
		{13, 2, 3},
		{23, 3, 1},
		{24, 4, 1},
		{999, 4, 2}, // за концом — клампим
	}
	for _, tt := range tests {
		loc := Locate(src, tt.off)
		if loc.Line != tt.line || loc.Column != tt.col {
			t.Errorf("Locate(%d) = %d:%d, want %d:%d", tt.off, loc.Line, loc.Column, tt.line, tt.col)
		}
		if loc.Filename != DefaultFilename || loc.FunctionName != DefaultFunctionName {
			t.Errorf("defaults not applied: %+v", loc)
		}
	}
}

// TestResolveAgreesWithLocate проверяет, что бинпоиск по LineIdx совпадает с линейным сканом.
func TestResolveAgreesWithLocate(t *testing.T) {
	inputs := []string{
		"",
		"single line",
		"\n\n\n",
		"a\nbb\nccc\n",
		"fn main() {\n    let x = 1;\n}\n// tail",
	}
	for _, in := range inputs {
		fs := NewFileSet()
		id := fs.AddVirtual("f.lust", []byte(in))
		f := fs.Get(id)
		for off := uint32(0); off <= uint32(len(in)); off++ {
			start, _ := fs.Resolve(Span{File: id, Start: off, End: off})
			loc := f.Locate(off)
			if start.Line != loc.Line || start.Col != loc.Column {
				t.Fatalf("%q @%d: Resolve=%d:%d Locate=%d:%d", in, off, start.Line, start.Col, loc.Line, loc.Column)
			}
			if loc.Filename != "f.lust" {
				t.Fatalf("filename = %q", loc.Filename)
			}
		}
	}
}

func TestSpanCoverAndContains(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 5}
	if got := a.Cover(b); got.Start != 2 || got.End != 8 {
		t.Errorf("Cover = %v", got)
	}
	if got := a.Cover(Span{File: 2, Start: 0, End: 100}); got != a {
		t.Errorf("cross-file Cover must be a no-op, got %v", got)
	}
	if !a.Contains(4) || a.Contains(8) {
		t.Errorf("Contains bounds wrong for %v", a)
	}
	if !(Span{Start: 3, End: 3}).Contains(3) {
		t.Errorf("empty span must contain its start")
	}
}
