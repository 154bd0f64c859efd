package driver

import (
	"os"
	"path/filepath"
	"testing"

	"lust/internal/diag"
	"lust/internal/source"
)

func TestDiskCache_RoundTrip(t *testing.T) {
	c, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("x.lust", []byte("let = 1;")))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynExpectIdentifier, source.Span{File: file.ID, Start: 4, End: 5}, "expected IDENT").
		WithNote(source.Span{File: file.ID, Start: 0, End: 3}, "here").
		WithFix("insert name", diag.FixEdit{Span: source.Span{File: file.ID, Start: 4, End: 4}, NewText: "x "}))

	key := CacheKey(file, 0)
	if ok, err := c.Get(key, &DiskPayload{}); ok || err != nil {
		t.Fatalf("empty cache Get = %v, %v", ok, err)
	}
	if err := c.Put(key, toPayload(file, bag, true, 0)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got DiskPayload
	ok, err := c.Get(key, &got)
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if !got.Errored || got.Path != "x.lust" || len(got.Diagnostics) != 1 {
		t.Fatalf("payload = %+v", got)
	}

	restored := restoreBag(&got, 7, 0)
	d := restored.Items()[0]
	if d.Code != diag.SynExpectIdentifier || d.Severity != diag.SevError {
		t.Errorf("restored = %+v", d)
	}
	if d.Primary != (source.Span{File: 7, Start: 4, End: 5}) {
		t.Errorf("primary = %+v", d.Primary)
	}
	if len(d.Notes) != 1 || d.Notes[0].Span.File != 7 || d.Notes[0].Msg != "here" {
		t.Errorf("notes = %+v", d.Notes)
	}
	if len(d.Fixes) != 1 || len(d.Fixes[0].Edits) != 1 ||
		d.Fixes[0].Edits[0].Span != (source.Span{File: 7, Start: 4, End: 4}) || d.Fixes[0].Edits[0].NewText != "x " {
		t.Errorf("fixes = %+v", d.Fixes)
	}

	// временные файлы не остаются
	matches, _ := filepath.Glob(filepath.Join(c.Dir(), "parse", "*", "tmp-*"))
	if len(matches) != 0 {
		t.Errorf("leftover temp files: %v", matches)
	}
}

func TestDiskCache_CorruptEntry(t *testing.T) {
	c, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	key := CacheKey(fs.Get(fs.AddVirtual("x", []byte("x"))), 0)
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte{0xc1, 0xff}, 0o644); err != nil {
		t.Fatal(err)
	}
	if ok, err := c.Get(key, &DiskPayload{}); ok || err == nil {
		t.Fatalf("corrupt entry Get = %v, %v", ok, err)
	}
}

func TestDiskCache_DropAll(t *testing.T) {
	c, err := NewDiskCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("x", []byte("let a = 1;")))
	key := CacheKey(file, 0)
	if err := c.Put(key, toPayload(file, diag.NewBag(0), false, 1)); err != nil {
		t.Fatal(err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if ok, _ := c.Get(key, &DiskPayload{}); ok {
		t.Fatal("entry survived DropAll")
	}
	if _, err := os.Stat(c.Dir()); err != nil {
		t.Fatalf("cache dir should be recreated: %v", err)
	}
}

func TestCacheKey(t *testing.T) {
	fs := source.NewFileSet()
	a := fs.Get(fs.AddVirtual("a", []byte("let a = 1;")))
	b := fs.Get(fs.AddVirtual("b", []byte("let a = 1;")))
	c := fs.Get(fs.AddVirtual("c", []byte("let a = 2;")))
	if CacheKey(a, 0) != CacheKey(b, 0) {
		t.Error("same content must share a key regardless of path")
	}
	if CacheKey(a, 0) == CacheKey(c, 0) {
		t.Error("different content must not share a key")
	}
	if CacheKey(a, 0) == CacheKey(a, 10) {
		t.Error("diagnostic limit must be part of the key")
	}
}

func TestMemCache_FallsThrough(t *testing.T) {
	disk, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("x", []byte("let a = 1;")))
	key := CacheKey(file, 0)
	if err := disk.Put(key, toPayload(file, diag.NewBag(0), false, 1)); err != nil {
		t.Fatal(err)
	}

	mem := NewMemCache(1, disk)
	var got DiskPayload
	ok, err := mem.Get(key, &got)
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if got.Stmts != 1 || mem.Len() != 1 {
		t.Fatalf("payload = %+v, len = %d", got, mem.Len())
	}
}
