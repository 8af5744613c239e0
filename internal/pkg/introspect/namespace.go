package introspect

import (
	"github.com/keboola/go-utils/pkg/orderedmap"
)

// Namespace is an ordered mapping from attribute name to attribute metadata.
// It is a read-only snapshot for the consumers, the filter must not modify it.
type Namespace struct {
	attrs *orderedmap.OrderedMap
}

func NewNamespace() *Namespace {
	return &Namespace{attrs: orderedmap.New()}
}

func (n *Namespace) Set(attr Attr) {
	n.attrs.Set(attr.Name, attr)
}

func (n *Namespace) Get(name string) (Attr, bool) {
	v, found := n.attrs.Get(name)
	if !found {
		return Attr{}, false
	}
	return v.(Attr), true
}

func (n *Namespace) Names() []string {
	return n.attrs.Keys()
}

func (n *Namespace) Len() int {
	return n.attrs.Len()
}
