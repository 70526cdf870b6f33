package render

import (
	"fmt"
	"io"
	"strings"

	"schedq/internal/store"
	"schedq/internal/task"
)

// DensityChart draws density samples as one row per grid point: timestamp,
// a bar scaled to the largest count, and the count itself.
func DensityChart(w io.Writer, points []store.DensityPoint, width int) {
	if len(points) == 0 {
		fmt.Fprintln(w, "No tasks to analyze.")
		return
	}
	if width < 20 {
		width = 20
	}

	// Final point carries the largest count; the series is cumulative.
	peak := points[len(points)-1].Due
	if peak == 0 {
		peak = 1
	}

	for _, p := range points {
		cells := p.Due * width / peak
		fmt.Fprintf(w, "%s %s %d\n",
			axisStyle.Render(p.At.Format(task.DeadlineLayout)),
			countStyle.Render(strings.Repeat("█", cells)),
			p.Due)
	}
}
