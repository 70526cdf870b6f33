package shell

import (
	"fmt"
	"strconv"
	"time"

	"schedq/internal/render"
)

func init() {
	Register(&Command{
		Name:        "upcoming",
		Description: "List all tasks ordered by deadline",
		Handler: func(s *Shell, args []string) bool {
			tasks := s.Store.Upcoming()
			if len(tasks) == 0 {
				fmt.Fprintln(s.out, "No upcoming tasks.")
				return false
			}
			fmt.Fprintln(s.out, "Upcoming Tasks:")
			for _, t := range tasks {
				fmt.Fprintf(s.out, "  %s\n", t)
			}
			return false
		},
	})

	Register(&Command{
		Name:        "schedule",
		Description: "Compute the greedy schedule and draw it",
		Handler: func(s *Shell, args []string) bool {
			scheduled := s.Store.Schedule()
			skipped := s.Store.Len() - len(scheduled)
			s.Log.Info("schedule computed", "accepted", len(scheduled), "skipped", skipped)

			if len(scheduled) == 0 {
				fmt.Fprintln(s.out, "No tasks available to schedule.")
				return false
			}
			fmt.Fprintln(s.out, "Scheduled Tasks:")
			for _, t := range scheduled {
				fmt.Fprintf(s.out, "  %s\n", t)
			}
			if skipped > 0 {
				fmt.Fprintf(s.out, "(%d task(s) skipped as infeasible)\n", skipped)
			}
			render.Gantt(s.out, render.BuildGantt(scheduled), s.Cfg.ChartWidth)
			return false
		},
	})

	Register(&Command{
		Name:        "density",
		Description: "Plot task density over time (optional bucket minutes)",
		Handler: func(s *Shell, args []string) bool {
			bucket := time.Duration(s.Cfg.DensityBucketMin) * time.Minute
			if len(args) > 0 {
				minutes, err := strconv.Atoi(args[0])
				if err != nil || minutes <= 0 {
					fmt.Fprintln(s.out, "Usage: density [bucket-minutes]")
					return false
				}
				bucket = time.Duration(minutes) * time.Minute
			}
			render.DensityChart(s.out, s.Store.Density(bucket), s.Cfg.ChartWidth)
			return false
		},
	})
}
