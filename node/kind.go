package node

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind enumerates the closed set of node variants.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindSimple
	KindExtracting
	KindUntyped
	KindChaining
	KindDispatching
	KindFlatDispatching

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsLeaf reports whether nodes of this kind never have children.
func (k Kind) IsLeaf() bool {
	switch k {
	default:
		return false
	case KindSimple, KindExtracting, KindUntyped:
		return true
	}
}
