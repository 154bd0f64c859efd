package project

import (
	"path/filepath"
	"testing"
)

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), "[package]\nname=\"x\"\n")
	writeFile(t, filepath.Join(root, "src", "main.lust"), "")

	got, ok, err := FindProjectRoot(filepath.Join(root, "src"))
	if err != nil || !ok {
		t.Fatalf("FindProjectRoot = %v, %v", ok, err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Fatalf("root = %s, want %s", got, want)
	}
}

func TestFindManifest_Missing(t *testing.T) {
	dir := t.TempDir()
	// TempDir может оказаться внутри проекта с lust.toml выше — тогда тест ничего не докажет.
	if _, ok, _ := FindManifest(filepath.Dir(dir)); ok {
		t.Skip("manifest above temp dir")
	}
	_, ok, err := FindManifest(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("no manifest expected")
	}
}
