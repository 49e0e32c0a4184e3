// Package host runs plugin instances against a scripting host.
//
// It owns the per-instance lifecycle (Initialize, CreateRootObject,
// ReleaseRootObject), builds namespace trees from declarative manifests,
// and embeds the wazero runtime for hosts that drive the bridge from a
// WASM guest. Everything here is the serving shell around the bridge
// package's resolution engine.
package host
