package driver

import (
	"context"

	"lust/internal/diag"
	"lust/internal/lexer"
	"lust/internal/source"
	"lust/internal/token"
	"lust/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize загружает файл и прогоняет лексер до END.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	idx := opts.Timer.Begin("load")
	fileID, err := fs.Load(path)
	opts.Timer.End(idx, "")
	if err != nil {
		return nil, err
	}
	return tokenizeFile(ctx, fs, fs.Get(fileID), opts), nil
}

// TokenizeSource — то же для текста из памяти (stdin, REPL).
func TokenizeSource(ctx context.Context, name string, content []byte, opts Options) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeFile(ctx, fs, fs.Get(fileID), opts)
}

func tokenizeFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) *TokenizeResult {
	_, sp := trace.Start(ctx, trace.ScopePhase, "lex")
	sp.WithExtra("path", file.Path)
	idx := opts.Timer.Begin("lex")

	// в режиме токенизации лексические ошибки репортит сам лексер
	bag := diag.NewBag(opts.MaxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	opts.Timer.End(idx, "")
	sp.End("")
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
