package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token; its Text carries the message.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Newline is reserved: whitespace skipping consumes line breaks, so the lexer never emits it.
	Newline
	// Comment is a `//` line comment.
	Comment

	// Ident represents an identifier token.
	Ident
	// TypeName is an identifier in type position (directly after ':').
	TypeName

	IntLit    // 123
	FloatLit  // 123.5
	StringLit // "..."

	KwLet      // let
	KwConst    // const
	KwMut      // mut
	KwFn       // fn
	KwStruct   // struct
	KwTrait    // trait
	KwImpl     // impl
	KwFor      // for
	KwType     // type
	KwIf       // if
	KwElse     // else
	KwLoop     // loop
	KwWhile    // while
	KwBreak    // break
	KwContinue // continue
	KwIn       // in
	KwEnum     // enum
	KwAsync    // async
	KwAwait    // await
	KwPub      // pub
	KwCrate    // crate
	KwSuper    // super
	KwMod      // mod
	KwSelf     // self
	KwAs       // as
	KwStatic   // static
	KwRef      // ref
	KwTrue     // true
	KwFalse    // false
	KwReturn   // return

	Plus          // +
	PlusPlus      // ++
	PlusAssign    // +=
	Minus         // -
	MinusMinus    // --
	MinusAssign   // -=
	Arrow         // ->
	Star          // *
	StarStar      // **
	StarAssign    // *=
	Slash         // /
	SlashAssign   // /=
	Percent       // %
	PercentAssign // %=
	Assign        // =
	EqEq          // ==
	Bang          // ! или not
	BangEq        // !=
	Lt            // <
	LtEq          // <=
	Gt            // >
	GtEq          // >=
	Amp           // &
	AndAnd        // && или and
	AmpAssign     // &=
	Pipe          // |
	OrOr          // || или or
	PipeAssign    // |=
	Caret         // ^
	CaretAssign   // ^=
	Tilde         // ~
	Dot           // .
	DotDot        // ..
	DotDotEq      // ..=
	Colon         // :
	ColonColon    // ::
	Hash          // #
	HashBracket   // #[
	HashBang      // #!
	Quote         // '
	Comma         // ,
	Semicolon     // ;
	LParen        // (
	RParen        // )
	LBrace        // {
	RBrace        // }
	LBracket      // [
	RBracket      // ]

	kindCount
)

var kindNames = [...]string{
	Invalid:   "ERROR",
	EOF:       "END",
	Newline:   "NEWLINE",
	Comment:   "COMMENTVAL",
	Ident:     "IDENT",
	TypeName:  "TYPE",
	IntLit:    "INT",
	FloatLit:  "FLOAT",
	StringLit: "STRING",

	KwLet:      "let",
	KwConst:    "const",
	KwMut:      "mut",
	KwFn:       "fn",
	KwStruct:   "struct",
	KwTrait:    "trait",
	KwImpl:     "impl",
	KwFor:      "for",
	KwType:     "type",
	KwIf:       "if",
	KwElse:     "else",
	KwLoop:     "loop",
	KwWhile:    "while",
	KwBreak:    "break",
	KwContinue: "continue",
	KwIn:       "in",
	KwEnum:     "enum",
	KwAsync:    "async",
	KwAwait:    "await",
	KwPub:      "pub",
	KwCrate:    "crate",
	KwSuper:    "super",
	KwMod:      "mod",
	KwSelf:     "self",
	KwAs:       "as",
	KwStatic:   "static",
	KwRef:      "ref",
	KwTrue:     "true",
	KwFalse:    "false",
	KwReturn:   "return",

	Plus:          "PLUS",
	PlusPlus:      "PLUSPLUS",
	PlusAssign:    "PLUS_ASSIGN",
	Minus:         "MINUS",
	MinusMinus:    "MINUSMINUS",
	MinusAssign:   "MINUS_ASSIGN",
	Arrow:         "ARROW",
	Star:          "STAR",
	StarStar:      "STARSTAR",
	StarAssign:    "STAR_ASSIGN",
	Slash:         "SLASH",
	SlashAssign:   "SLASH_ASSIGN",
	Percent:       "PERCENT",
	PercentAssign: "PERCENT_ASSIGN",
	Assign:        "ASSIGN",
	EqEq:          "EQEQ",
	Bang:          "BANG",
	BangEq:        "BANG_EQ",
	Lt:            "LT",
	LtEq:          "LT_EQ",
	Gt:            "GT",
	GtEq:          "GT_EQ",
	Amp:           "AMP",
	AndAnd:        "ANDAND",
	AmpAssign:     "AMP_ASSIGN",
	Pipe:          "PIPE",
	OrOr:          "OROR",
	PipeAssign:    "PIPE_ASSIGN",
	Caret:         "CARET",
	CaretAssign:   "CARET_ASSIGN",
	Tilde:         "TILDE",
	Dot:           "DOT",
	DotDot:        "DOTDOT",
	DotDotEq:      "DOTDOT_EQ",
	Colon:         "COLON",
	ColonColon:    "COLONCOLON",
	Hash:          "HASH",
	HashBracket:   "ATTRIBUTE_START",
	HashBang:      "GLOBAL_ATTRIBUTE_START",
	Quote:         "SQ",
	Comma:         "COMMA",
	Semicolon:     "SEMICOLON",
	LParen:        "LPAREN",
	RParen:        "RPAREN",
	LBrace:        "LBRACE",
	RBrace:        "RBRACE",
	LBracket:      "LBRACKET",
	RBracket:      "RBRACKET",
}

// String возвращает стабильное имя вида токена для диагностик и дампов.
// Ключевые слова печатаются как есть, остальное — в верхнем регистре.
func (k Kind) String() string {
	if k < kindCount {
		if name := kindNames[k]; name != "" {
			return name
		}
	}
	return "UNKNOWN"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwLet && k <= KwReturn
}

// IsLiteral reports whether k is a numeric or string literal.
func (k Kind) IsLiteral() bool {
	return k == IntLit || k == FloatLit || k == StringLit
}

// IsName reports whether k can name something: a plain or type-position identifier.
func (k Kind) IsName() bool {
	return k == Ident || k == TypeName
}

// Kinds returns every defined kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, int(kindCount))
	for k := range kindCount {
		out = append(out, k)
	}
	return out
}
