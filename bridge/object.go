package bridge

import (
	"github.com/scriptglue/scriptglue-sdk/domain/ports"
)

// WrapperFactory produces the wrapper handed to the host when a
// namespace object becomes host-visible. Custom factories let generated
// leaves attach per-instance native state to the wrapper.
type WrapperFactory func(ictx ports.InstanceContext, target *NamespaceObject) *Wrapper

// NamespaceObject is one node of the statically built object graph: a
// namespace, a class's static surface, or a class's instance surface.
// It owns a name-keyed map of child nodes and an optional base link used
// for inherited-member fallback.
//
// Nodes live for the whole plugin instance; nothing destroys them
// individually. All mutation (AddNamespaceObject, SetBaseClass) must
// finish before the first resolution call — the graph is build-then-serve
// and is not guarded against concurrent mutation.
type NamespaceObject struct {
	children map[string]*NamespaceObject
	base     *NamespaceObject
	leaf     ports.Scriptable
	factory  WrapperFactory
}

// ObjectOption configures a NamespaceObject at construction.
type ObjectOption func(*NamespaceObject)

// WithLeaf attaches the per-class member behavior consulted by the
// resolution walk before this node's children.
func WithLeaf(leaf ports.Scriptable) ObjectOption {
	return func(n *NamespaceObject) {
		n.leaf = leaf
	}
}

// WithWrapperFactory overrides how wrappers for this node are created.
func WithWrapperFactory(factory WrapperFactory) ObjectOption {
	return func(n *NamespaceObject) {
		n.factory = factory
	}
}

// NewNamespaceObject creates an empty node with no base link.
func NewNamespaceObject(opts ...ObjectOption) *NamespaceObject {
	n := &NamespaceObject{
		children: make(map[string]*NamespaceObject),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// SetBaseClass sets the inherited-member fallback link. Passing nil
// removes the link. The chain must stay acyclic; the loader checks this
// at build time and the engine does not re-check at call time.
func (n *NamespaceObject) SetBaseClass(base *NamespaceObject) {
	n.base = base
}

// BaseClass returns the current fallback link, nil when absent.
func (n *NamespaceObject) BaseClass() *NamespaceObject {
	return n.base
}

// AddNamespaceObject inserts child under name. A second insert with the
// same name overwrites the first — the build-time generator is
// responsible for not colliding names.
func (n *NamespaceObject) AddNamespaceObject(name string, child *NamespaceObject) {
	n.children[name] = child
}

// GetNamespaceObject looks up a direct child by name. Unlike resolution
// traffic it never consults the base chain; it exists for
// construction-time wiring.
func (n *NamespaceObject) GetNamespaceObject(name string) (*NamespaceObject, bool) {
	child, ok := n.children[name]
	return child, ok
}

// Leaf returns the node's attached member behavior, nil when absent.
func (n *NamespaceObject) Leaf() ports.Scriptable {
	return n.leaf
}

// CreateWrapper binds this node to a host instance as a host-visible
// scriptable value. Every call produces a fresh wrapper; deduplication is
// a generator-level optimization, not a core concern.
func (n *NamespaceObject) CreateWrapper(ictx ports.InstanceContext) *Wrapper {
	if n.factory != nil {
		return n.factory(ictx, n)
	}
	return NewWrapper(ictx, n)
}
