package bridge

import (
	"github.com/scriptglue/scriptglue-sdk/domain/entities"
	"github.com/scriptglue/scriptglue-sdk/domain/ports"
)

// Exception messages observed by host callers. These exact strings are
// part of the protocol contract.
const (
	msgUnknownProperty    = "unknown property"
	msgMethodNotFound     = "method does not exist"
	msgMissingConstructor = "missing constructor"
)

// The resolution engine: each operation walks the base chain iteratively,
// consulting at every node first the leaf behavior, then the child map.
// A leaf that reports ResolutionFailed stops the walk; the exception it
// recorded propagates unmodified (first writer wins).

// HasMethod reports whether name resolves to a callable member at this
// node or anywhere along its base chain.
func (n *NamespaceObject) HasMethod(name string) bool {
	for cur := n; cur != nil; cur = cur.base {
		if cur.leaf != nil && cur.leaf.HasMethod(name) {
			return true
		}
	}
	return false
}

// HasProperty reports whether name resolves to a readable member at this
// node or anywhere along its base chain.
func (n *NamespaceObject) HasProperty(name string) bool {
	for cur := n; cur != nil; cur = cur.base {
		if cur.leaf != nil && cur.leaf.HasProperty(name) {
			return true
		}
		if _, ok := cur.children[name]; ok {
			return true
		}
	}
	return false
}

// GetProperty fetches a property. A child namespace object resolves to a
// freshly created wrapper around it, so every successful get of a child
// yields a host-visible object reference. Unresolved names fail with
// "unknown property" unless a nested call already recorded an exception.
func (n *NamespaceObject) GetProperty(ictx ports.InstanceContext, name string, exc *entities.Exception) (entities.Value, bool) {
	for cur := n; cur != nil; cur = cur.base {
		if cur.leaf != nil {
			switch res := cur.leaf.GetProperty(ictx, name, exc); res.Kind {
			case ports.Resolved:
				return res.Value, true
			case ports.ResolutionFailed:
				return entities.Undefined(), false
			}
		}
		if child, ok := cur.children[name]; ok {
			return entities.ObjectValue(child.CreateWrapper(ictx)), true
		}
	}
	exc.SetIfEmpty(msgUnknownProperty)
	return entities.Undefined(), false
}

// SetProperty stores a property. Child namespace objects are not
// writable; only leaf behavior can accept a write, so the walk consults
// leaves alone.
func (n *NamespaceObject) SetProperty(name string, value entities.Value, exc *entities.Exception) bool {
	for cur := n; cur != nil; cur = cur.base {
		if cur.leaf == nil {
			continue
		}
		switch cur.leaf.SetProperty(name, value, exc).Kind {
		case ports.Resolved:
			return true
		case ports.ResolutionFailed:
			return false
		}
	}
	exc.SetIfEmpty(msgUnknownProperty)
	return false
}

// Call invokes a method along the base chain.
func (n *NamespaceObject) Call(ictx ports.InstanceContext, method string, args []entities.Value, exc *entities.Exception) (entities.Value, bool) {
	for cur := n; cur != nil; cur = cur.base {
		if cur.leaf == nil {
			continue
		}
		switch res := cur.leaf.Call(ictx, method, args, exc); res.Kind {
		case ports.Resolved:
			return res.Value, true
		case ports.ResolutionFailed:
			return entities.Undefined(), false
		}
	}
	exc.SetIfEmpty(msgMethodNotFound)
	return entities.Undefined(), false
}

// Construct instantiates this node. Construction never falls back along
// the base chain: a node without its own constructor fails with
// "missing constructor" regardless of arguments, and the message is
// written unconditionally.
func (n *NamespaceObject) Construct(ictx ports.InstanceContext, args []entities.Value, exc *entities.Exception) (entities.Value, bool) {
	if n.leaf != nil {
		switch res := n.leaf.Construct(ictx, args, exc); res.Kind {
		case ports.Resolved:
			return res.Value, true
		case ports.ResolutionFailed:
			return entities.Undefined(), false
		}
	}
	exc.Set(msgMissingConstructor)
	return entities.Undefined(), false
}

// PropertyNames appends every member name reachable from this node to
// names, base links first, without deduplication.
func (n *NamespaceObject) PropertyNames(names *[]entities.Value, exc *entities.Exception) {
	// Collect the chain so base names come first while keeping the walk
	// iterative.
	var chain []*NamespaceObject
	for cur := n; cur != nil; cur = cur.base {
		chain = append(chain, cur)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		cur := chain[i]
		if cur.leaf != nil {
			for _, name := range cur.leaf.PropertyNames() {
				*names = append(*names, entities.StringValue(name))
			}
		}
		for name := range cur.children {
			*names = append(*names, entities.StringValue(name))
		}
	}
}
