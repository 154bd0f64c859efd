// Package repl implements the interactive parse loop behind `lust repl`:
// every complete input is parsed and its diagnostics and AST are printed.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/peterh/liner"

	"lust/internal/diagfmt"
	"lust/internal/driver"
	"lust/internal/lexer"
	"lust/internal/source"
	"lust/internal/token"
)

const (
	promptMain  = "lust> "
	promptCont  = "  ... "
	historyFile = ".lust_history"
	inputName   = "<repl>"
)

// LineReader — то, что REPL требует от строкового редактора (liner.State подходит).
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// Options configures a session.
type Options struct {
	Color          bool
	MaxDiagnostics int
	// Format — начальный формат AST: tree|pretty|json|yaml|dot.
	Format string
}

type session struct {
	out    io.Writer
	opts   Options
	tokens bool
}

// Start runs an interactive session on the terminal with persistent history.
func Start(ctx context.Context, out io.Writer, opts Options) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Fprintln(out, "lust repl: enter statements, :help for commands")
	err := Run(ctx, ln, out, opts)
	if errors.Is(err, liner.ErrPromptAborted) {
		return nil
	}
	return err
}

// Run — цикл чтения; завершается на EOF, :quit или отмене ctx.
func Run(ctx context.Context, r LineReader, out io.Writer, opts Options) error {
	if opts.Format == "" {
		opts.Format = "tree"
	}
	s := &session{out: out, opts: opts}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		src, err := readInput(r)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}
		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		r.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		if strings.HasPrefix(trimmed, ":") {
			if quit := s.command(trimmed); quit {
				return nil
			}
			continue
		}
		if err := s.eval(ctx, src); err != nil {
			return err
		}
	}
}

// readInput копит строки, пока NeedsMore говорит, что ввод не закончен.
func readInput(r LineReader) (string, error) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := r.Prompt(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) && b.Len() > 0 {
				// недописанный ввод всё равно разбираем
				return b.String(), nil
			}
			return "", err
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if strings.HasPrefix(strings.TrimSpace(b.String()), ":") || !NeedsMore(b.String()) {
			return b.String(), nil
		}
	}
}

// NeedsMore сообщает, что ввод оборван: есть незакрытые скобки или строка.
// Пустая строка ввода после незакрытой конструкции не спасает — ждём дальше.
func NeedsMore(src string) bool {
	fs := source.NewFileSet()
	lx := lexer.New(fs.Get(fs.AddVirtual(inputName, []byte(src))), lexer.Options{})
	depth := 0
	for {
		tok := lx.Next()
		switch tok.Kind {
		case token.EOF:
			return depth > 0
		case token.Invalid:
			// незакрытая строка тянется до конца ввода
			return strings.HasPrefix(src[tok.Span.Start:], "\"")
		case token.LBrace, token.LParen, token.LBracket, token.HashBracket:
			depth++
		case token.RBrace, token.RParen, token.RBracket:
			depth--
			if depth < 0 {
				// лишняя закрывающая — пусть парсер скажет
				return false
			}
		}
	}
}

func (s *session) command(cmd string) (quit bool) {
	fields := strings.Fields(cmd)
	switch fields[0] {
	case ":q", ":quit", ":exit":
		return true
	case ":tokens":
		s.tokens = !s.tokens
		fmt.Fprintf(s.out, "token listing %s\n", onOff(s.tokens))
	case ":format":
		if len(fields) != 2 || !slices.Contains(diagfmt.ASTFormats, fields[1]) {
			fmt.Fprintf(s.out, "usage: :format %s\n", strings.Join(diagfmt.ASTFormats, "|"))
			return false
		}
		s.opts.Format = fields[1]
		fmt.Fprintf(s.out, "format %s\n", s.opts.Format)
	case ":help":
		fmt.Fprintln(s.out, ":quit                 leave the repl")
		fmt.Fprintln(s.out, ":tokens               toggle token listing")
		fmt.Fprintf(s.out, ":format <%s>  AST output format\n", strings.Join(diagfmt.ASTFormats, "|"))
	default:
		fmt.Fprintf(s.out, "unknown command %s. Type :help\n", fields[0])
	}
	return false
}

func (s *session) eval(ctx context.Context, src string) error {
	dopts := driver.Options{MaxDiagnostics: s.opts.MaxDiagnostics}
	if s.tokens {
		tr := driver.TokenizeSource(ctx, inputName, []byte(src), dopts)
		if err := diagfmt.FormatTokensPretty(s.out, tr.Tokens, tr.FileSet); err != nil {
			return err
		}
	}
	res, err := driver.ParseSource(ctx, inputName, []byte(src), dopts)
	if err != nil {
		return err
	}
	if res.Bag.Len() > 0 {
		res.Bag.Sort()
		diagfmt.Pretty(s.out, res.Bag, res.FileSet, diagfmt.PrettyOpts{Color: s.opts.Color, Context: 1, ShowNotes: true})
		fmt.Fprintln(s.out)
	}
	return writeAST(s.out, s.opts.Format, res)
}

func writeAST(w io.Writer, format string, res *driver.ParseResult) error {
	return diagfmt.FormatAST(w, format, res.Program, res.FileSet)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
