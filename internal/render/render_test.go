package render

import (
	"strings"
	"testing"
	"time"

	"schedq/internal/store"
	"schedq/internal/task"
)

var base = time.Date(2026, 1, 2, 9, 0, 0, 0, time.Local)

func mustTask(t *testing.T, name string, cat task.Category, due time.Time, priority, minutes int) task.Task {
	t.Helper()
	tk, err := task.New(name, cat, due, priority, minutes)
	if err != nil {
		t.Fatalf("task.New(%s): %v", name, err)
	}
	return tk
}

func TestBuildGanttLanes(t *testing.T) {
	tasks := []task.Task{
		mustTask(t, "essay", task.Academic, base.Add(2*time.Hour), 1, 60),
		mustTask(t, "laundry", task.Personal, base.Add(3*time.Hour), 2, 30),
		mustTask(t, "reading", task.Academic, base.Add(4*time.Hour), 3, 45),
	}

	spec := BuildGantt(tasks)
	if len(spec.Lanes) != 2 {
		t.Fatalf("lanes: got %d, want 2", len(spec.Lanes))
	}
	if spec.Lanes[0].Category != task.Academic || spec.Lanes[1].Category != task.Personal {
		t.Errorf("lane order: got %s, %s", spec.Lanes[0].Category, spec.Lanes[1].Category)
	}
	if len(spec.Lanes[0].Bars) != 2 {
		t.Errorf("academic bars: got %d, want 2", len(spec.Lanes[0].Bars))
	}
	if len(spec.Lanes[1].Bars) != 1 {
		t.Errorf("personal bars: got %d, want 1", len(spec.Lanes[1].Bars))
	}
}

func TestBuildGanttGeometry(t *testing.T) {
	tk := mustTask(t, "essay", task.Academic, base.Add(2*time.Hour), 1, 60)
	spec := BuildGantt([]task.Task{tk})

	bar := spec.Lanes[0].Bars[0]
	if !bar.End.Equal(tk.Deadline) {
		t.Errorf("bar end: got %v, want deadline %v", bar.End, tk.Deadline)
	}
	if got := bar.End.Sub(bar.Start); got != time.Hour {
		t.Errorf("bar span: got %v, want duration 1h", got)
	}
	if !spec.Start.Equal(bar.Start) || !spec.End.Equal(bar.End) {
		t.Errorf("window [%v, %v] does not match single bar [%v, %v]",
			spec.Start, spec.End, bar.Start, bar.End)
	}
}

func TestBuildGanttEmpty(t *testing.T) {
	spec := BuildGantt(nil)
	if !spec.Empty() {
		t.Error("spec of no tasks should be empty")
	}
}

func TestGanttOutput(t *testing.T) {
	tasks := []task.Task{
		mustTask(t, "essay", task.Academic, base.Add(2*time.Hour), 1, 60),
		mustTask(t, "laundry", task.Personal, base.Add(3*time.Hour), 2, 30),
	}

	var b strings.Builder
	Gantt(&b, BuildGantt(tasks), 40)
	out := b.String()

	for _, want := range []string{"ACADEMIC", "PERSONAL", "essay", "laundry", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGanttEmptyOutput(t *testing.T) {
	var b strings.Builder
	Gantt(&b, GanttSpec{}, 40)
	if !strings.Contains(b.String(), "No tasks available to plot.") {
		t.Errorf("unexpected output: %q", b.String())
	}
}

func TestDensityChartOutput(t *testing.T) {
	points := []store.DensityPoint{
		{At: base, Due: 1},
		{At: base.Add(time.Hour), Due: 3},
	}

	var b strings.Builder
	DensityChart(&b, points, 30)
	out := b.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines: got %d, want 2\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "2026-01-02 09:00") || !strings.HasSuffix(lines[0], " 1") {
		t.Errorf("first row: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], " 3") {
		t.Errorf("last row: %q", lines[1])
	}
	// The peak row carries the longest bar.
	if strings.Count(lines[1], "█") <= strings.Count(lines[0], "█") {
		t.Errorf("peak bar not longest:\n%s", out)
	}
}

func TestDensityChartEmpty(t *testing.T) {
	var b strings.Builder
	DensityChart(&b, nil, 30)
	if !strings.Contains(b.String(), "No tasks to analyze.") {
		t.Errorf("unexpected output: %q", b.String())
	}
}
