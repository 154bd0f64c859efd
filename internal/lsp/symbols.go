package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"lust/internal/ast"
	"lust/internal/source"
)

// documentSymbols строит outline: функции, структуры с полями, трейты с членами,
// переменные верхнего уровня. Вложенные блоки не обходим.
func documentSymbols(prog *ast.Program, file *source.File) []protocol.DocumentSymbol {
	out := make([]protocol.DocumentSymbol, 0, len(prog.Stmts))
	for _, st := range prog.Stmts {
		if sym, ok := stmtSymbol(st, file); ok {
			out = append(out, sym)
		}
	}
	return out
}

func stmtSymbol(st ast.Stmt, file *source.File) (protocol.DocumentSymbol, bool) {
	switch n := st.(type) {
	case *ast.FunctionDecl:
		return fnSymbol(n, file, protocol.SymbolKindFunction), true
	case *ast.VarDecl:
		return varSymbol(n, file), true
	case *ast.StructDecl:
		sym := newSymbol(n.Ident, protocol.SymbolKindStruct, n.Span(), file)
		for _, f := range n.Fields {
			sym.Children = append(sym.Children, newSymbol(f.Ident, protocol.SymbolKindField, f.Span(), file))
		}
		return sym, true
	case *ast.TraitDecl:
		sym := newSymbol(n.Ident, protocol.SymbolKindInterface, n.Span(), file)
		for _, t := range n.Types {
			sym.Children = append(sym.Children, newSymbol(t.Ident, protocol.SymbolKindTypeParameter, t.Span(), file))
		}
		for _, c := range n.Consts {
			sym.Children = append(sym.Children, varSymbol(c, file))
		}
		for _, m := range n.Methods {
			sym.Children = append(sym.Children, fnSymbol(m, file, protocol.SymbolKindMethod))
		}
		return sym, true
	}
	return protocol.DocumentSymbol{}, false
}

func fnSymbol(fn *ast.FunctionDecl, file *source.File, kind protocol.SymbolKind) protocol.DocumentSymbol {
	sym := newSymbol(fn.Ident, kind, fn.Span(), file)
	if fn.IsAsync {
		detail := "async"
		sym.Detail = &detail
	}
	return sym
}

func varSymbol(v *ast.VarDecl, file *source.File) protocol.DocumentSymbol {
	kind := protocol.SymbolKindVariable
	if v.IsConst {
		kind = protocol.SymbolKindConstant
	}
	return newSymbol(v.Ident, kind, v.Span(), file)
}

func newSymbol(name string, kind protocol.SymbolKind, sp source.Span, file *source.File) protocol.DocumentSymbol {
	if name == "" {
		// клиенты отвергают символы с пустым именем
		name = "<anonymous>"
	}
	rng := rangeForSpan(file, sp)
	return protocol.DocumentSymbol{
		Name:           name,
		Kind:           kind,
		Range:          rng,
		SelectionRange: rng,
	}
}
