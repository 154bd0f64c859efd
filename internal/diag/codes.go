package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexInvalidToken       Code = 1003

	// Парсерные
	SynInfo                  Code = 2000
	SynUnexpectedToken       Code = 2001
	SynExpectSemicolon       Code = 2012
	SynLetConstConflict      Code = 2031
	SynExpectFnBody          Code = 2032
	SynUnexpectedTraitMember Code = 2033
	SynBadVisibility         Code = 2034
	SynBadAttribute          Code = 2035
	SynDuplicateModifier     Code = 2036
	SynExpectIdentifier      Code = 2102

	// type / expression
	SynExpectType       Code = 2202
	SynExpectExpression Code = 2203
	SynBadArraySize     Code = 2208

	// IO
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002

	// Проект
	ProjManifestInvalid   Code = 5001
	ProjToolchainMismatch Code = 5002

	// Ещё не поддержано
	FutIfExprNotSupported Code = 7001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:              "Unknown error",
		LexInfo:                  "Lexical information",
		LexUnknownChar:           "Unknown character",
		LexUnterminatedString:    "Unterminated string literal",
		LexInvalidToken:          "Invalid token",
		SynInfo:                  "Syntax information",
		SynUnexpectedToken:       "Unexpected token",
		SynExpectSemicolon:       "Expected semicolon",
		SynLetConstConflict:      "'let' and 'const' cannot be combined",
		SynExpectFnBody:          "Expected function body",
		SynUnexpectedTraitMember: "Unexpected trait member",
		SynBadVisibility:         "Invalid visibility restriction",
		SynBadAttribute:          "Malformed attribute",
		SynDuplicateModifier:     "Duplicate modifier",
		SynExpectIdentifier:      "Expected identifier",
		SynExpectType:            "Expected type",
		SynExpectExpression:      "Expected expression",
		SynBadArraySize:          "Invalid array size",
		IOLoadFileError:          "I/O load file error",
		IOCacheError:             "Cache error",
		ProjManifestInvalid:      "Invalid project manifest",
		ProjToolchainMismatch:    "Toolchain version does not satisfy manifest",
		FutIfExprNotSupported:    "'if' expressions are not supported yet",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 7000 && ic < 8000:
		return fmt.Sprintf("FUT%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
