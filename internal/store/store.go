// Package store holds the task collection and derives its three views:
// deadline-ordered retrieval, a greedy feasibility schedule, and deadline
// density over a fixed time grid.
package store

import (
	"sort"
	"time"

	"github.com/emirpasic/gods/trees/redblacktree"

	"schedq/internal/task"
)

// DefaultBucket is the density grid spacing used when the caller passes a
// non-positive bucket.
const DefaultBucket = time.Hour

// Store owns every submitted task. The collection only grows; tasks are never
// mutated or removed once added. Single-threaded by design: callers must not
// share a Store across goroutines without their own locking.
type Store struct {
	tasks      []task.Task        // insertion order
	byDeadline *redblacktree.Tree // deadline index, in-order walk = Upcoming
	seq        uint64
	last       []task.Task // most recent Schedule result, convenience only

	now func() time.Time
}

// New creates an empty store using the wall clock.
func New() *Store {
	return &Store{
		byDeadline: redblacktree.NewWith(cmpDeadline),
		now:        time.Now,
	}
}

// deadlineKey orders the index by deadline, then by insertion sequence so
// equal deadlines keep insertion order.
type deadlineKey struct {
	at  int64 // deadline as unix nanos
	seq uint64
}

func cmpDeadline(a, b any) int {
	ka, kb := a.(deadlineKey), b.(deadlineKey)
	switch {
	case ka.at < kb.at:
		return -1
	case ka.at > kb.at:
		return 1
	case ka.seq < kb.seq:
		return -1
	case ka.seq > kb.seq:
		return 1
	default:
		return 0
	}
}

// Add appends the task to the collection. Duplicate names are permitted;
// tasks are assumed already validated by task.New.
func (s *Store) Add(t task.Task) {
	s.tasks = append(s.tasks, t)
	s.byDeadline.Put(deadlineKey{at: t.Deadline.UnixNano(), seq: s.seq}, t)
	s.seq++
}

// Len reports the number of stored tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Upcoming returns every task ordered ascending by deadline, insertion order
// breaking ties. Empty store yields an empty slice.
func (s *Store) Upcoming() []task.Task {
	out := make([]task.Task, 0, len(s.tasks))
	it := s.byDeadline.Iterator()
	for it.Next() {
		out = append(out, it.Value().(task.Task))
	}
	return out
}

// Schedule recomputes the greedy feasibility schedule from scratch against
// the current time. Tasks are considered in (priority, deadline) order; a
// task is accepted iff it can finish by its own deadline when started at the
// cursor, and a skipped task is never reconsidered. Accepted tasks run
// back-to-back from the invocation time. The result replaces the retained
// last schedule.
func (s *Store) Schedule() []task.Task {
	sorted := make([]task.Task, len(s.tasks))
	copy(sorted, s.tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority < sorted[j].Priority
		}
		return sorted[i].Deadline.Before(sorted[j].Deadline)
	})

	cursor := s.now()
	accepted := make([]task.Task, 0, len(sorted))
	for _, t := range sorted {
		end := cursor.Add(t.Duration())
		if end.After(t.Deadline) {
			continue // infeasible now, never reconsidered
		}
		accepted = append(accepted, t)
		cursor = end
	}

	s.last = accepted
	return accepted
}

// LastSchedule returns the result of the most recent Schedule call. It is a
// convenience for renderers, not authoritative state: the next Schedule call
// replaces it.
func (s *Store) LastSchedule() []task.Task {
	return s.last
}
