package host

import (
	"log/slog"
	"sync"

	"github.com/scriptglue/scriptglue-sdk/bridge"
	"github.com/scriptglue/scriptglue-sdk/domain/entities"
	"github.com/scriptglue/scriptglue-sdk/domain/errors"
	"github.com/scriptglue/scriptglue-sdk/marshal"
)

// instanceState tracks lifecycle progress. Transitions are strictly
// forward; every lifecycle call happens exactly once.
type instanceState int

const (
	stateCreated instanceState = iota
	stateInitialized
	stateServing
	stateTearingDown
	stateClosed
)

// Instance is the per-plugin-instance context. It implements
// ports.InstanceContext so wrappers created during resolution can be
// accounted for, and it owns the allocator handed to the marshalling
// helpers. One Instance serves one host plugin slot; nothing here is a
// process singleton.
type Instance struct {
	mu sync.Mutex

	name   string
	root   *bridge.NamespaceObject
	logger *slog.Logger

	alloc          *marshal.BoundedAllocator
	skipIndexProbe bool

	state       instanceState
	rootWrapper *bridge.Wrapper
	live        map[entities.ObjectRef]struct{}
}

// InstanceOption configures an Instance at construction.
type InstanceOption func(*Instance)

// WithLogger sets the structured logger used for lifecycle events.
func WithLogger(logger *slog.Logger) InstanceOption {
	return func(i *Instance) {
		i.logger = logger
	}
}

// WithAllocationLimit caps the total bytes the instance's allocator will
// hand out at once.
func WithAllocationLimit(limit int) InstanceOption {
	return func(i *Instance) {
		i.alloc = marshal.NewBoundedAllocator(limit)
	}
}

// WithSkipIndexProbe makes the marshalling helpers fetch array elements
// without probing for existence first, for hosts whose indexed-existence
// answers are unreliable.
func WithSkipIndexProbe(skip bool) InstanceOption {
	return func(i *Instance) {
		i.skipIndexProbe = skip
	}
}

// NewInstance binds a built namespace tree to a fresh plugin instance.
// The tree must be fully built before the first lifecycle call.
func NewInstance(name string, root *bridge.NamespaceObject, opts ...InstanceOption) *Instance {
	i := &Instance{
		name:   name,
		root:   root,
		logger: slog.Default(),
		alloc:  marshal.NewBoundedAllocator(0),
		live:   make(map[entities.ObjectRef]struct{}),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Name returns the instance name used in logs.
func (i *Instance) Name() string { return i.name }

// Root returns the namespace tree this instance serves.
func (i *Instance) Root() *bridge.NamespaceObject { return i.root }

// Allocator returns the instance's bounded allocator.
func (i *Instance) Allocator() *marshal.BoundedAllocator { return i.alloc }

// SkipIndexProbe reports whether indexed reads should skip the existence
// probe.
func (i *Instance) SkipIndexProbe() bool { return i.skipIndexProbe }

// Initialize starts the instance lifecycle. It must be the first
// lifecycle call and must happen exactly once.
func (i *Instance) Initialize() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.state != stateCreated {
		return &errors.LifecycleError{Call: "Initialize", Reason: "already initialized"}
	}
	if i.root == nil {
		return &errors.LifecycleError{Call: "Initialize", Reason: "instance has no namespace tree"}
	}
	i.state = stateInitialized
	i.logger.Debug("instance initialized", "instance", i.name)
	return nil
}

// CreateRootObject hands out the retained root wrapper. It must follow
// Initialize and must happen exactly once.
func (i *Instance) CreateRootObject() (*bridge.Wrapper, error) {
	i.mu.Lock()
	if i.state != stateInitialized {
		i.mu.Unlock()
		return nil, &errors.LifecycleError{Call: "CreateRootObject", Reason: lifecycleReason(i.state, stateInitialized)}
	}
	i.state = stateServing
	i.mu.Unlock()

	// CreateWrapper calls back into TrackWrapper, so the lock must be
	// released first.
	w := i.root.CreateWrapper(i)

	i.mu.Lock()
	i.rootWrapper = w
	i.mu.Unlock()

	i.logger.Debug("root object created", "instance", i.name)
	return w, nil
}

// ReleaseRootObject drops the root reference and enters teardown. It
// must follow CreateRootObject and must happen exactly once. After it
// returns, resolution traffic must not create new wrappers.
func (i *Instance) ReleaseRootObject() error {
	i.mu.Lock()
	if i.state != stateServing {
		i.mu.Unlock()
		return &errors.LifecycleError{Call: "ReleaseRootObject", Reason: lifecycleReason(i.state, stateServing)}
	}
	i.state = stateTearingDown
	w := i.rootWrapper
	i.rootWrapper = nil
	i.mu.Unlock()

	if w != nil {
		w.Release()
	}
	i.logger.Debug("root object released", "instance", i.name)
	return nil
}

// Close finishes teardown, reclaims the allocator, and reports wrappers
// the host never released. Close is idempotent.
func (i *Instance) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.state == stateClosed {
		return nil
	}

	leaked := len(i.live)
	if leaked > 0 {
		i.logger.Warn("instance closed with live wrappers", "instance", i.name, "count", leaked)
	}
	for ref := range i.live {
		delete(i.live, ref)
	}
	outstanding := i.alloc.Outstanding()
	if outstanding > 0 {
		i.logger.Warn("instance closed with outstanding allocations", "instance", i.name, "bytes", outstanding)
	}
	i.alloc.Reset()
	i.state = stateClosed
	i.logger.Debug("instance closed", "instance", i.name)
	return nil
}

// LiveWrappers reports how many tracked wrappers the host still holds.
func (i *Instance) LiveWrappers() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.live)
}

// TrackWrapper implements ports.InstanceContext. Wrapper creation during
// teardown indicates a reentrant host call; it is recorded so the leak
// report catches it.
func (i *Instance) TrackWrapper(ref entities.ObjectRef) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.state == stateTearingDown || i.state == stateClosed {
		i.logger.Warn("wrapper created during teardown", "instance", i.name)
	}
	i.live[ref] = struct{}{}
}

// WrapperReleased implements ports.InstanceContext.
func (i *Instance) WrapperReleased(ref entities.ObjectRef) {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.live, ref)
}

func lifecycleReason(got, want instanceState) string {
	switch {
	case got < want:
		return "called out of order"
	default:
		return "already called"
	}
}
