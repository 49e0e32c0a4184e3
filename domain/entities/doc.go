// Package entities provides core domain entities for the SDK: the host
// value sum type, the exception slot, the tree manifest format, and the
// wire DTOs for the out-of-process protocol variant. Engine- and
// host-specific behavior lives above this package; entities carry no
// dispatch logic of their own.
package entities
