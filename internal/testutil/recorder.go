package testutil

import (
	"fmt"
	"sync"

	"github.com/vk/markupui/internal/host"
)

// Allocation is one Allocate call seen by a Recorder.
type Allocation struct {
	Entity host.Entity
	Node   host.Node
}

// Recorder is a host.BuildContext that records every allocation in call
// order. Entities are numbered from 1.
type Recorder struct {
	// FailKind makes Allocate fail for nodes of this kind.
	FailKind string

	mu    sync.Mutex
	calls []Allocation
}

// Allocate implements host.BuildContext.
func (r *Recorder) Allocate(n host.Node) (host.Entity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailKind != "" && n.Kind == r.FailKind {
		return host.NoEntity, fmt.Errorf("recorder: refusing to allocate %s", n.Kind)
	}
	e := host.Entity(len(r.calls) + 1)
	r.calls = append(r.calls, Allocation{Entity: e, Node: n})
	return e, nil
}

// Calls returns a copy of the recorded allocations.
func (r *Recorder) Calls() []Allocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Allocation(nil), r.calls...)
}

// Kinds returns the kinds of the recorded allocations in call order.
func (r *Recorder) Kinds() []string {
	calls := r.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Node.Kind
	}
	return out
}

// Get returns the allocation for e.
func (r *Recorder) Get(e host.Entity) (Allocation, bool) {
	calls := r.Calls()
	i := int(e) - 1
	if i < 0 || i >= len(calls) {
		return Allocation{}, false
	}
	return calls[i], true
}
