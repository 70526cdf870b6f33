// Package ui provides the live terminal dashboard.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"schedq/internal/config"
	"schedq/internal/render"
	"schedq/internal/store"
)

type tab int

const (
	tabUpcoming tab = iota
	tabSchedule
	tabDensity
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	footerStyle    = lipgloss.NewStyle().Faint(true)
)

// Run starts the dashboard over the given store and blocks until the user
// quits. The store is only read (Schedule recomputes its transient view).
func Run(st *store.Store, cfg config.Config) error {
	model := newModel(st, cfg)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	store        *store.Store
	cfg          config.Config
	active       tab
	tickInterval time.Duration
}

type tickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func newModel(st *store.Store, cfg config.Config) *model {
	return &model{
		store:        st,
		cfg:          cfg,
		active:       tabUpcoming,
		tickInterval: time.Second,
	}
}

func (m *model) Init() tea.Cmd {
	return tickCmd(m.tickInterval)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.active = tabUpcoming
			return m, nil
		case "2":
			m.active = tabSchedule
			return m, nil
		case "3":
			m.active = tabDensity
			return m, nil
		case "r", "f5":
			return m, nil // view recomputes every render
		}
	case tickMsg:
		return m, tickCmd(m.tickInterval)
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("schedq dashboard"))
	b.WriteString("  ")
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	switch m.active {
	case tabUpcoming:
		m.viewUpcoming(&b)
	case tabSchedule:
		m.viewSchedule(&b)
	case tabDensity:
		m.viewDensity(&b)
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("1 upcoming • 2 schedule • 3 density • q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *model) tabBar() string {
	labels := []string{"upcoming", "schedule", "density"}
	parts := make([]string, len(labels))
	for i, l := range labels {
		if tab(i) == m.active {
			parts[i] = activeTabStyle.Render(l)
		} else {
			parts[i] = footerStyle.Render(l)
		}
	}
	return strings.Join(parts, " | ")
}

func (m *model) viewUpcoming(b *strings.Builder) {
	tasks := m.store.Upcoming()
	if len(tasks) == 0 {
		b.WriteString("No upcoming tasks.\n")
		return
	}
	for _, t := range tasks {
		style := render.CategoryStyle(t.Category)
		fmt.Fprintf(b, "%s %s\n", style.Render("●"), t)
	}
}

func (m *model) viewSchedule(b *strings.Builder) {
	scheduled := m.store.Schedule()
	if len(scheduled) == 0 {
		b.WriteString("No tasks available to schedule.\n")
		return
	}
	render.Gantt(b, render.BuildGantt(scheduled), m.cfg.ChartWidth)
}

func (m *model) viewDensity(b *strings.Builder) {
	bucket := time.Duration(m.cfg.DensityBucketMin) * time.Minute
	render.DensityChart(b, m.store.Density(bucket), m.cfg.ChartWidth)
}
