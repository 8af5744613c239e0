package introspect

import "fmt"

// Ref is the canonical identity of a type-checked object, package path + name.
type Ref struct {
	Pkg  string
	Name string
}

func (r Ref) String() string {
	return fmt.Sprintf("%s.%s", r.Pkg, r.Name)
}

type Kind int

const (
	KindConst Kind = iota
	KindVar
	KindFunc
	KindType
	KindPackage
)

func (k Kind) String() string {
	switch k {
	case KindConst:
		return "const"
	case KindVar:
		return "var"
	case KindFunc:
		return "func"
	case KindType:
		return "type"
	case KindPackage:
		return "package"
	default:
		return "unknown"
	}
}

// Attr is one entry of a namespace snapshot.
//
// All fields are static facts read from syntax and type information,
// nothing is obtained by evaluating program values.
type Attr struct {
	Name string
	Kind Kind
	// Origin is the canonical object the attribute resolves to, through type
	// alias chains. Nil when the attribute has no stable identity, such
	// attributes cannot be matched against an exclusion set.
	Origin *Ref
	// TypeOrigin identifies the named type of the attribute's value,
	// nil for unnamed types.
	TypeOrigin *Ref
	// Deprecated is set when the doc comment of the attribute itself
	// contains a "Deprecated:" paragraph.
	Deprecated bool
	// DeprecatedGroup is set when the doc comment of the enclosing
	// declaration group contains a "Deprecated:" paragraph.
	DeprecatedGroup bool
	// Dir is the source directory of the imported package, Kind == KindPackage only.
	Dir string
}
