// Package bridge implements the dispatch core: the namespace object
// graph, the base-chain resolution engine, and the wrapper that adapts a
// namespace object to the host's dynamic-object protocol.
//
// The object graph is built once, before any host traffic, and is
// read-only afterwards; the engine walks it synchronously on the host's
// calling thread. Wrappers are the only mutable pieces, and their
// reference counts are serialized entirely by the host.
package bridge
