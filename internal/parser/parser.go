package parser

import (
	"context"

	"lust/internal/ast"
	"lust/internal/diag"
	"lust/internal/lexer"
	"lust/internal/source"
	"lust/internal/token"
)

type Options struct {
	// MaxErrors ограничивает число отправленных в Reporter ошибок; 0 — без ограничений.
	// Флаг ошибки выставляется в любом случае.
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors > o.MaxErrors
}

type Result struct {
	Program *ast.Program
	Errored bool
	// Err is non-nil when parsing stopped because ctx was cancelled.
	Err error
}

// Parser — состояние парсера на один файл.
// Держит ровно один токен просмотра вперёд; комментарии отфильтрованы.
type Parser struct {
	lx       *lexer.Lexer
	opts     Options
	tok      token.Token // текущий (ещё не съеденный) токен
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
	errored  bool
	halted   bool // встретили token.Invalid — дальше только EOF
	depth    int  // вложенность блоков

	program      *ast.Program
	pendingAttrs []*ast.Attribute // #[...] ждут следующего оператора
}

// New creates a parser reading tokens from lx. The first token is pulled immediately.
func New(lx *lexer.Lexer, opts Options) *Parser {
	p := &Parser{
		lx:       lx,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}
	p.tok = p.pull()
	return p
}

// ParseFile — входная точка для разбора одного файла.
func ParseFile(ctx context.Context, lx *lexer.Lexer, opts Options) Result {
	p := New(lx, opts)
	prog, err := p.parse(ctx)
	return Result{Program: prog, Errored: p.IsError(), Err: err}
}

// Parse разбирает весь вход и всегда возвращает Program (возможно, частичный).
func (p *Parser) Parse() *ast.Program {
	prog, _ := p.parse(context.Background())
	return prog
}

// IsError reports whether any error-level diagnostic was produced, including ones
// dropped by MaxErrors.
func (p *Parser) IsError() bool {
	return p.errored
}

// parse — основной цикл верхнего уровня: пока не EOF — parseStatement.
func (p *Parser) parse(ctx context.Context) (*ast.Program, error) {
	p.program = &ast.Program{Sp: p.tok.Span}
	for !p.at(token.EOF) {
		if err := ctx.Err(); err != nil {
			return p.finish(), err
		}
		if stmt := p.parseStatement(); stmt != nil {
			p.program.Stmts = append(p.program.Stmts, stmt)
		}
	}
	return p.finish(), nil
}

func (p *Parser) finish() *ast.Program {
	p.dropDanglingAttrs("attribute is not followed by a statement")
	p.program.Sp = p.program.Sp.Cover(p.lastSpan)
	return p.program
}

// dropDanglingAttrs предупреждает о #[...] без оператора и забывает их.
func (p *Parser) dropDanglingAttrs(msg string) {
	if len(p.pendingAttrs) == 0 {
		return
	}
	p.report(diag.SynBadAttribute, diag.SevWarning, p.pendingAttrs[0].Sp, msg)
	p.pendingAttrs = nil
}
