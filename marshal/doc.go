// Package marshal converts between native Go representations and the
// host's dynamic values: text encoding between the 8-bit and wide
// conventions, host-allocated string values, and the probe-then-fetch
// helpers used to read properties and array elements off host objects.
// Every conversion fails with an error, never a panic; a crash across
// the host boundary is always a defect.
package marshal
