package shell

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"schedq/internal/task"
)

func init() {
	Register(&Command{
		Name:        "export",
		Description: "Write the last computed schedule to a CSV file",
		Handler: func(s *Shell, args []string) bool {
			if len(args) == 0 {
				fmt.Fprintln(s.out, "Usage: export <path>")
				return false
			}
			scheduled := s.Store.LastSchedule()
			if len(scheduled) == 0 {
				fmt.Fprintln(s.out, "Nothing to export. Run schedule first.")
				return false
			}
			if err := writeScheduleCSV(args[0], scheduled); err != nil {
				s.Log.Error("export failed", "path", args[0], "err", err)
				fmt.Fprintf(s.out, "Export failed: %v\n", err)
				return false
			}
			fmt.Fprintf(s.out, "Wrote %d task(s) to %s\n", len(scheduled), args[0])
			return false
		},
	})
}

func writeScheduleCSV(path string, tasks []task.Task) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Write([]string{"name", "category", "priority", "deadline", "duration_min"})
	for _, t := range tasks {
		w.Write([]string{
			t.Name,
			string(t.Category),
			strconv.Itoa(t.Priority),
			t.Deadline.Format(task.DeadlineLayout),
			strconv.Itoa(t.DurationMin),
		})
	}
	w.Flush()
	return w.Error()
}
