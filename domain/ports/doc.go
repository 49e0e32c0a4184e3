// Package ports defines the interfaces the bridge core depends on.
// These ports enable dependency inversion in both directions: the host
// runtime consumes DynamicObject, while leaf implementations and
// infrastructure adapters (parsers, allocators, scripting hosts) are
// consumed by the core through the other interfaces.
package ports
