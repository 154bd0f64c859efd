package driver

import (
	"context"
	"strconv"

	"lust/internal/ast"
	"lust/internal/diag"
	"lust/internal/lexer"
	"lust/internal/parser"
	"lust/internal/source"
	"lust/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program *ast.Program
	Bag     *diag.Bag
	Errored bool
}

// Parse загружает и разбирает один файл. Ошибка возвращается только для I/O
// и отмены контекста; синтаксические проблемы лежат в Bag.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	idx := opts.Timer.Begin("load")
	fileID, err := fs.Load(path)
	opts.Timer.End(idx, "")
	if err != nil {
		return nil, err
	}
	return parseLoaded(ctx, fs, fs.Get(fileID), opts)
}

// ParseSource разбирает текст из памяти под именем name.
func ParseSource(ctx context.Context, name string, content []byte, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseLoaded(ctx, fs, fs.Get(fileID), opts)
}

func parseLoaded(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) (*ParseResult, error) {
	idx := opts.Timer.Begin("parse")
	prog, bag, errored, err := parseFile(ctx, file, opts)
	opts.Timer.End(idx, strconv.Itoa(len(prog.Stmts))+" stmts")
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Program: prog,
		Bag:     bag,
		Errored: errored,
	}, err
}

// parseFile — общее ядро для одиночного и параллельного разбора.
// Лексер работает без репортера: недопустимый токен репортит парсер (LEX1003).
func parseFile(ctx context.Context, file *source.File, opts Options) (*ast.Program, *diag.Bag, bool, error) {
	ctx, sp := trace.Start(ctx, trace.ScopeFile, "parse")
	sp.WithExtra("path", file.Path)

	bag := diag.NewBag(opts.MaxDiagnostics)
	lx := lexer.New(file, lexer.Options{})
	res := parser.ParseFile(ctx, lx, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: opts.maxErrors(),
	})

	sp.WithExtra("diagnostics", strconv.Itoa(bag.Len()))
	sp.End(strconv.FormatBool(res.Errored))
	return res.Program, bag, res.Errored, res.Err
}
