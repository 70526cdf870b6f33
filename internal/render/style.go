package render

import (
	"github.com/charmbracelet/lipgloss"

	"schedq/internal/task"
)

// Styles for chart output. Categories keep fixed colors so the same task
// reads the same across the Gantt, the dashboard, and listings.
var (
	academicStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("117")) // sky blue
	personalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("210")) // salmon

	laneTitleStyle = lipgloss.NewStyle().Bold(true)
	axisStyle      = lipgloss.NewStyle().Faint(true)
	countStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("135")) // purple, density bars
)

// CategoryStyle returns the lipgloss style for a task category.
func CategoryStyle(c task.Category) lipgloss.Style {
	if c == task.Personal {
		return personalStyle
	}
	return academicStyle
}
