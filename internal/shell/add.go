package shell

import (
	"fmt"
	"time"

	"schedq/internal/task"
)

func init() {
	Register(&Command{
		Name:        "add",
		Description: "Add a task (prompts for each field)",
		Handler: func(s *Shell, args []string) bool {
			t, ok := s.promptTask()
			if !ok {
				return false
			}
			s.Store.Add(t)
			s.Log.Info("task added", "name", t.Name, "category", t.Category, "due", t.Deadline.Format(task.DeadlineLayout))
			fmt.Fprintf(s.out, "Task %q added.\n", t.Name)
			return false
		},
	})
}

// promptTask collects the five task fields, reprompting each one until it
// validates. ok is false if input ends mid-way.
func (s *Shell) promptTask() (task.Task, bool) {
	name, ok := s.promptLine("Task name")
	if !ok {
		return task.Task{}, false
	}

	var category task.Category
	for {
		line, ok := s.promptLine("Task type (academic/personal)")
		if !ok {
			return task.Task{}, false
		}
		cat, err := task.ParseCategory(line)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a valid task type (academic/personal).")
			continue
		}
		category = cat
		break
	}

	var deadline time.Time
	for {
		line, ok := s.promptLine("Deadline (YYYY-MM-DD HH:MM)")
		if !ok {
			return task.Task{}, false
		}
		due, err := time.ParseInLocation(task.DeadlineLayout, line, time.Local)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid format. Please enter the deadline as %s.\n", task.DeadlineLayout)
			continue
		}
		deadline = due
		break
	}

	priority, ok := s.promptInt("Priority (1 for highest)")
	if !ok {
		return task.Task{}, false
	}

	var duration int
	for {
		d, ok := s.promptInt("Duration in minutes")
		if !ok {
			return task.Task{}, false
		}
		if d <= 0 {
			fmt.Fprintln(s.out, "Duration must be a positive number of minutes.")
			continue
		}
		duration = d
		break
	}

	t, err := task.New(name, category, deadline, priority, duration)
	if err != nil {
		// Field prompts above should have caught everything except an
		// empty name.
		fmt.Fprintf(s.out, "Could not add task: %v\n", err)
		return task.Task{}, false
	}
	return t, true
}
