package ast

import "strings"

// QualifiedName — путь вида a::b::c: Namespaces = [a b], Name = c.
type QualifiedName struct {
	Namespaces []string
	Name       string
}

// String joins the path with "::".
func (q QualifiedName) String() string {
	if len(q.Namespaces) == 0 {
		return q.Name
	}
	return strings.Join(q.Namespaces, "::") + "::" + q.Name
}

// IsZero reports whether the name is empty.
func (q QualifiedName) IsZero() bool {
	return q.Name == "" && len(q.Namespaces) == 0
}
