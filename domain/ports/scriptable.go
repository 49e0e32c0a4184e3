package ports

import "github.com/scriptglue/scriptglue-sdk/domain/entities"

// ResolutionKind tags the outcome of a single-node member lookup.
type ResolutionKind int

const (
	// NotResolved means the node has no local answer; the base-chain
	// walk continues at the next link.
	NotResolved ResolutionKind = iota

	// Resolved means the node answered; Resolution.Value holds the
	// result for value-producing operations.
	Resolved

	// ResolutionFailed means the node answered with an error. The walk
	// stops and the exception recorded by the node propagates upward
	// unmodified.
	ResolutionFailed
)

// Resolution is the tagged result of a member lookup at one node.
type Resolution struct {
	Value entities.Value
	Kind  ResolutionKind
}

// Found returns a successful resolution carrying v.
func Found(v entities.Value) Resolution {
	return Resolution{Kind: Resolved, Value: v}
}

// NotFound returns a resolution that defers to the base chain.
func NotFound() Resolution {
	return Resolution{Kind: NotResolved}
}

// Failed returns a resolution that aborts the walk. The caller must have
// recorded an exception before returning it.
func Failed() Resolution {
	return Resolution{Kind: ResolutionFailed}
}

// InstanceContext identifies the host plugin instance a resolution call
// runs under. Leaves treat it as an opaque token and pass it through when
// they hand out nested object references; the host layer implements it to
// keep per-instance teardown accounting.
type InstanceContext interface {
	// TrackWrapper registers a newly created host-visible object
	// reference with the instance.
	TrackWrapper(ref entities.ObjectRef)

	// WrapperReleased records that the host dropped the last reference
	// to a previously tracked object.
	WrapperReleased(ref entities.ObjectRef)
}

// Scriptable supplies the per-class member behavior of one namespace
// object node. Generated or hand-written leaf implementations satisfy it;
// the base-chain walker composes them by delegation. Every method may be
// called reentrantly within a single host call and must not retain the
// exception slot past its return.
type Scriptable interface {
	// HasMethod reports whether name is a callable member of this node.
	HasMethod(name string) bool

	// HasProperty reports whether name is a readable member of this node.
	HasProperty(name string) bool

	// GetProperty resolves a property read. A ResolutionFailed return
	// requires exc to be set.
	GetProperty(ictx InstanceContext, name string, exc *entities.Exception) Resolution

	// SetProperty resolves a property write. Resolved means stored.
	SetProperty(name string, value entities.Value, exc *entities.Exception) Resolution

	// Call resolves a method invocation.
	Call(ictx InstanceContext, method string, args []entities.Value, exc *entities.Exception) Resolution

	// Construct resolves an instantiation request. Unlike the other
	// operations, construction never falls back along the base chain:
	// only the target node's own leaf is consulted.
	Construct(ictx InstanceContext, args []entities.Value, exc *entities.Exception) Resolution

	// PropertyNames lists the member names this node contributes to
	// enumeration. Order is unspecified and duplicates are permitted.
	PropertyNames() []string
}
