package client

import (
	"errors"
	"sync"
)

// ErrStale marks a response that lost the race against a newer write to
// the same entity. The caller should drop the payload: a fresher state
// has already been applied.
var ErrStale = errors.New("stale response discarded")

type entityKey struct {
	kind string
	id   int64
}

// sequenceGuard hands out monotonic ticket numbers per entity and
// refuses to commit a ticket once a later one has landed. Responses
// therefore apply in issue order regardless of arrival order.
type sequenceGuard struct {
	mu      sync.Mutex
	issued  map[entityKey]uint64
	applied map[entityKey]uint64
}

func newSequenceGuard() *sequenceGuard {
	return &sequenceGuard{
		issued:  make(map[entityKey]uint64),
		applied: make(map[entityKey]uint64),
	}
}

// begin reserves the next ticket for the entity.
func (g *sequenceGuard) begin(kind string, id int64) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := entityKey{kind: kind, id: id}
	g.issued[key]++
	return g.issued[key]
}

// commit applies a ticket. It reports false when a later ticket for the
// same entity already committed.
func (g *sequenceGuard) commit(kind string, id int64, ticket uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := entityKey{kind: kind, id: id}
	if ticket <= g.applied[key] {
		return false
	}
	g.applied[key] = ticket
	return true
}
