// Package task defines the task value type and its construction-time validation.
package task

import (
	"fmt"
	"strings"
	"time"
)

// DeadlineLayout is the timestamp layout accepted for deadlines, minute resolution.
const DeadlineLayout = "2006-01-02 15:04"

// Category classifies a task. The set is closed.
type Category string

const (
	Academic Category = "academic"
	Personal Category = "personal"
)

// ParseCategory maps user input onto the closed category set.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case Academic:
		return Academic, nil
	case Personal:
		return Personal, nil
	}
	return "", &InvalidTaskError{Field: "category", Reason: fmt.Sprintf("%q is not one of academic, personal", s)}
}

// InvalidTaskError reports a construction-time validation failure,
// naming the violated field.
type InvalidTaskError struct {
	Field  string
	Reason string
}

func (e *InvalidTaskError) Error() string {
	return fmt.Sprintf("invalid task: %s: %s", e.Field, e.Reason)
}

// Task is one unit of work. Immutable once constructed; names are not
// required to be unique.
type Task struct {
	Name        string
	Category    Category
	Deadline    time.Time
	Priority    int // lower value = higher priority, 1 is highest
	DurationMin int // minutes required to complete
}

// New validates the fields and builds a task. Validation failures are
// returned as *InvalidTaskError and are never coerced into defaults.
func New(name string, category Category, deadline time.Time, priority int, durationMin int) (Task, error) {
	if strings.TrimSpace(name) == "" {
		return Task{}, &InvalidTaskError{Field: "name", Reason: "must not be empty"}
	}
	if category != Academic && category != Personal {
		return Task{}, &InvalidTaskError{Field: "category", Reason: fmt.Sprintf("%q is not one of academic, personal", category)}
	}
	if deadline.IsZero() {
		return Task{}, &InvalidTaskError{Field: "deadline", Reason: "must be set"}
	}
	if durationMin <= 0 {
		return Task{}, &InvalidTaskError{Field: "duration", Reason: fmt.Sprintf("%d min is not positive", durationMin)}
	}
	return Task{
		Name:        name,
		Category:    category,
		Deadline:    deadline,
		Priority:    priority,
		DurationMin: durationMin,
	}, nil
}

// Parse builds a task from the string forms an interactive caller collects.
// The deadline must match DeadlineLayout.
func Parse(name, category, deadline string, priority, durationMin int) (Task, error) {
	cat, err := ParseCategory(category)
	if err != nil {
		return Task{}, err
	}
	due, err := time.ParseInLocation(DeadlineLayout, strings.TrimSpace(deadline), time.Local)
	if err != nil {
		return Task{}, &InvalidTaskError{Field: "deadline", Reason: fmt.Sprintf("%q does not match %s", deadline, DeadlineLayout)}
	}
	return New(name, cat, due, priority, durationMin)
}

// Duration returns the task duration as a time.Duration.
func (t Task) Duration() time.Duration {
	return time.Duration(t.DurationMin) * time.Minute
}

func (t Task) String() string {
	return fmt.Sprintf("%s (%s) - Priority: %d, Due: %s, Duration: %d min",
		t.Name, t.Category, t.Priority, t.Deadline.Format(DeadlineLayout), t.DurationMin)
}
