package lexer

import (
	"lust/internal/source"
	"lust/internal/token"
)

// Lexer выдаёт токены по одному по запросу парсера.
// Помнит вид предыдущего значимого токена (комментарии не считаются):
// от него зависит, станет ли идентификатор TypeName.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
	prev   token.Kind
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		prev:   token.EOF,
	}
}

// File returns the source file being scanned.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// Next возвращает следующий токен, включая комментарии.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	tok := lx.scan()
	if tok.Kind != token.Comment {
		lx.prev = tok.Kind
	}
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	t := lx.Next()
	lx.look = &t
	return t
}

// PrevKind returns the kind of the last non-comment token produced by the scanner.
// Before the first token it is EOF.
func (lx *Lexer) PrevKind() token.Kind {
	return lx.prev
}

// EmptySpan returns a zero-width span at the current scanner position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) scan() token.Token {
	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		// ASCII буква или возможный Unicode идентификатор
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	case ch == '/' && lx.peekIs(1, '/'):
		return lx.scanComment()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// skipWhitespace пропускает пробелы, табы и переводы строк.
// На "//" останавливается: комментарии — это токены.
func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			lx.cursor.Bump()
		default:
			return
		}
	}
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) invalid(start Mark, msg string) token.Token {
	return token.Token{Kind: token.Invalid, Span: lx.cursor.SpanFrom(start), Text: msg}
}
