// Package demo provides canned tasks for exercising the scheduler on a
// fresh store.
package demo

import (
	"time"

	"schedq/internal/task"
)

// Tasks returns the sample task set with deadlines relative to now.
func Tasks(now time.Time) []task.Task {
	samples := []struct {
		name     string
		category task.Category
		in       time.Duration
		priority int
		minutes  int
	}{
		{"Calculus Assignment", task.Academic, 5 * time.Hour, 1, 120},
		{"Project Report", task.Academic, 12 * time.Hour, 2, 180},
		{"Self-Care", task.Personal, 8 * time.Hour, 3, 60},
	}

	out := make([]task.Task, 0, len(samples))
	for _, s := range samples {
		t, err := task.New(s.name, s.category, now.Add(s.in), s.priority, s.minutes)
		if err != nil {
			continue // samples are static and valid; skip rather than panic
		}
		out = append(out, t)
	}
	return out
}
