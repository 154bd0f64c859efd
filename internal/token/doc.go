// Package token defines lexical token kinds for the lust front end.
// Invariants:
//   - Token.Span covers the whole lexeme, including the quotes of a string literal.
//   - Token.Text is the lexeme, except for StringLit (body without quotes)
//     and Invalid (the diagnostic message).
//   - Comments are regular tokens (Kind: Comment); the parser filters them.
//   - An identifier right after ':' is TypeName, not Ident. Keywords never change kind.
//   - "or", "and", "not" share kinds with "||", "&&", "!".
package token
