package store

import (
	"time"

	"schedq/internal/task"
)

// DensityPoint is one sample on the density grid: how many stored tasks are
// due at or before At.
type DensityPoint struct {
	At  time.Time
	Due int
}

// Density samples the cumulative deadline count on a grid spaced bucket
// apart, starting at the earliest stored deadline and extending to the first
// point at or after the latest. The counts are non-decreasing and the final
// value equals the store size. Empty store yields an empty slice; a
// non-positive bucket falls back to DefaultBucket.
func (s *Store) Density(bucket time.Duration) []DensityPoint {
	if s.byDeadline.Size() == 0 {
		return nil
	}
	if bucket <= 0 {
		bucket = DefaultBucket
	}

	deadlines := make([]time.Time, 0, len(s.tasks))
	it := s.byDeadline.Iterator()
	for it.Next() {
		deadlines = append(deadlines, it.Value().(task.Task).Deadline)
	}
	latest := deadlines[len(deadlines)-1]

	var points []DensityPoint
	due := 0
	for at := deadlines[0]; ; at = at.Add(bucket) {
		for due < len(deadlines) && !deadlines[due].After(at) {
			due++
		}
		points = append(points, DensityPoint{At: at, Due: due})
		if !at.Before(latest) {
			break
		}
	}
	return points
}
