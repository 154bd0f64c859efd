package ast

// Visibility описывает доступность элемента. pub(self) и отсутствие pub совпадают.
type Visibility uint8

const (
	VisPrivate Visibility = iota
	VisSuper
	VisCrate
	VisPublic
)

func (v Visibility) String() string {
	switch v {
	case VisSuper:
		return "pub(super)"
	case VisCrate:
		return "pub(crate)"
	case VisPublic:
		return "pub"
	default:
		return "private"
	}
}
