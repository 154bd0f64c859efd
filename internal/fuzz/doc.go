// Package fuzztests houses Go fuzz harnesses for the lust front end
// (source -> lexer -> parser). They guard against panics, hangs and
// malformed trees on arbitrary input.
//
// Назначение: загрузить байты в FileSet и прогнать их через лексер/парсер,
// проверяя инварианты токенов и дерева.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
