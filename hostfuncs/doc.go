// Package hostfuncs exposes the bridge's dispatch operations as named
// host functions with byte payloads. The implementations have NO WASM
// runtime dependencies (no wazero/wasmtime); any guest runtime that can
// shuttle bytes can drive the bridge through them.
package hostfuncs
