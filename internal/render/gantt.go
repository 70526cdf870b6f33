// Package render builds chart specs from task views and draws them as
// terminal output. Builders are pure; drawing is the only side effect.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"schedq/internal/task"
)

// Bar is one task on a Gantt lane, spanning [Start, End).
type Bar struct {
	Name  string
	Start time.Time
	End   time.Time
}

// Lane groups the bars of one category.
type Lane struct {
	Category task.Category
	Bars     []Bar
}

// GanttSpec is a renderer-independent description of a schedule chart:
// one lane per category, bar width proportional to duration.
type GanttSpec struct {
	Lanes []Lane
	Start time.Time
	End   time.Time
}

// Empty reports whether the spec has nothing to draw.
func (g GanttSpec) Empty() bool {
	return len(g.Lanes) == 0
}

// BuildGantt lays scheduled tasks out by category. Each bar spans the window
// ending at the task deadline with the task's duration, matching the
// schedule view callers pass in. Lane order is fixed: academic, then
// personal; lanes with no tasks are omitted.
func BuildGantt(tasks []task.Task) GanttSpec {
	var spec GanttSpec
	if len(tasks) == 0 {
		return spec
	}

	byCat := map[task.Category][]Bar{}
	for i, t := range tasks {
		start := t.Deadline.Add(-t.Duration())
		end := t.Deadline
		byCat[t.Category] = append(byCat[t.Category], Bar{Name: t.Name, Start: start, End: end})

		if i == 0 || start.Before(spec.Start) {
			spec.Start = start
		}
		if end.After(spec.End) {
			spec.End = end
		}
	}

	for _, cat := range []task.Category{task.Academic, task.Personal} {
		if bars, ok := byCat[cat]; ok {
			spec.Lanes = append(spec.Lanes, Lane{Category: cat, Bars: bars})
		}
	}
	return spec
}

// Gantt draws the spec as fixed-width terminal rows, one row per bar,
// grouped under a lane title per category.
func Gantt(w io.Writer, spec GanttSpec, width int) {
	if spec.Empty() {
		fmt.Fprintln(w, "No tasks available to plot.")
		return
	}
	if width < 20 {
		width = 20
	}

	window := spec.End.Sub(spec.Start)
	if window <= 0 {
		window = time.Minute
	}
	cell := func(at time.Time) int {
		p := int(int64(width-1) * int64(at.Sub(spec.Start)) / int64(window))
		if p < 0 {
			p = 0
		}
		if p > width-1 {
			p = width - 1
		}
		return p
	}

	for _, lane := range spec.Lanes {
		style := CategoryStyle(lane.Category)
		fmt.Fprintln(w, laneTitleStyle.Render(strings.ToUpper(string(lane.Category))))
		for _, bar := range lane.Bars {
			from, to := cell(bar.Start), cell(bar.End)
			if to <= from {
				to = from + 1 // every task gets at least one visible cell
			}
			row := strings.Repeat(" ", from) + style.Render(strings.Repeat("█", to-from))
			fmt.Fprintf(w, "%s %s\n", row, bar.Name)
		}
	}
	fmt.Fprintln(w, axisStyle.Render(fmt.Sprintf("%s%s%s",
		spec.Start.Format(task.DeadlineLayout),
		strings.Repeat(" ", max(1, width-2*len(task.DeadlineLayout))),
		spec.End.Format(task.DeadlineLayout))))
}
