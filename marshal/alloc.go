package marshal

import (
	"sync"

	"github.com/scriptglue/scriptglue-sdk/domain/errors"
)

// DefaultAllocationLimit bounds the total bytes a single allocator will
// hand out at once. This prevents unbounded growth when a guest keeps
// producing values without releasing them.
const DefaultAllocationLimit = 100 * 1024 * 1024 // 100 MB

// BoundedAllocator is an in-process ports.Allocator that tracks every
// outstanding buffer and enforces a total-bytes limit. It keeps a
// reference to each allocation so accounting survives until the buffer
// is freed; Free is idempotent and ignores untracked buffers.
type BoundedAllocator struct {
	mu    sync.Mutex
	bufs  map[*byte][]byte // first-byte address -> slice reference
	total int
	limit int
}

// NewBoundedAllocator builds an allocator with the given total-bytes
// limit. A non-positive limit selects DefaultAllocationLimit.
func NewBoundedAllocator(limit int) *BoundedAllocator {
	if limit <= 0 {
		limit = DefaultAllocationLimit
	}
	return &BoundedAllocator{
		bufs:  make(map[*byte][]byte),
		limit: limit,
	}
}

// Alloc implements ports.Allocator. A zero size is trivially successful
// and yields an empty, non-nil slice that is not tracked.
func (a *BoundedAllocator) Alloc(size int) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.total+size > a.limit {
		return nil, &errors.AllocationError{Requested: size, Current: a.total, Limit: a.limit}
	}

	buf := make([]byte, size)
	a.bufs[&buf[0]] = buf
	a.total += size
	return buf, nil
}

// Free implements ports.Allocator. Accounting uses the stored slice
// length, not the caller's view of the buffer, so a resliced argument
// cannot corrupt the counter.
func (a *BoundedAllocator) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	stored, ok := a.bufs[&buf[0]]
	if !ok {
		return
	}
	delete(a.bufs, &buf[0])
	a.total -= len(stored)
	if a.total < 0 {
		a.total = 0
	}
}

// Outstanding reports the total bytes currently allocated.
func (a *BoundedAllocator) Outstanding() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.total
}

// Reset drops every tracked buffer. Called at instance teardown to
// reclaim anything a guest never released.
func (a *BoundedAllocator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for ptr := range a.bufs {
		delete(a.bufs, ptr)
	}
	a.total = 0
}
