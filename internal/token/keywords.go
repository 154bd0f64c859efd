package token

var keywords = map[string]Kind{
	"let":      KwLet,
	"const":    KwConst,
	"mut":      KwMut,
	"fn":       KwFn,
	"struct":   KwStruct,
	"trait":    KwTrait,
	"impl":     KwImpl,
	"for":      KwFor,
	"type":     KwType,
	"if":       KwIf,
	"else":     KwElse,
	"loop":     KwLoop,
	"while":    KwWhile,
	"break":    KwBreak,
	"continue": KwContinue,
	"in":       KwIn,
	"enum":     KwEnum,
	"async":    KwAsync,
	"await":    KwAwait,
	"pub":      KwPub,
	"crate":    KwCrate,
	"super":    KwSuper,
	"mod":      KwMod,
	"self":     KwSelf,
	"as":       KwAs,
	"static":   KwStatic,
	"ref":      KwRef,
	"true":     KwTrue,
	"false":    KwFalse,
	"return":   KwReturn,
	// словесные синонимы операторов
	"or":  OrOr,
	"and": AndAnd,
	"not": Bang,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
