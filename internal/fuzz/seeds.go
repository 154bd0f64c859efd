package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

// languageSeeds покрывают все формы грамматики и типичные поломки.
var languageSeeds = []string{
	"",
	"let a = 1;",
	"const mut x: i32 = 1 + 2 * 3 ** 4;",
	"let t: (i32, &mut [u8; 16], fn(i32) -> bool) = a;",
	"pub(crate) async fn f<T: A + b::C>(self, x: T) -> T { x }",
	"#![no_std]\n#[inline, cold(always)] fn g() {}",
	"struct P<T> { #[x] pub x: T, y: &&Vec<T>; }",
	"trait T { type U = i32; const N: usize; fn m(self); async fn n() {} }",
	"trait Empty;",
	"fn h() { a::b::c(1, \"s\", 2.5).d = e = f; { g; }; h }",
	"let s = \"esc \\\" quote\";",
	"a == b != c < d <= e > f >= g | h ^ i & j % k",
	"x or y and not z",
	"-a ++ --b !c ~d",
	"// comment only",
	"if x { }",
	"let = ;",
	"fn (",
	"struct { ,, }",
	"trait T { 1 }",
	"let x: [i32; 99999999999999999999] = a;",
	"let x = \"unterminated",
	"let $ = 1;",
	"#[",
	"pub(moon) fn f() {}",
	"let const x = 1;",
	"{{{{{{{{",
	"}}}}",
	"a..b..=c",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.lust файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".lust" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
