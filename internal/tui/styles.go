package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/stepbar/internal/ui"
)

// Style variables for the live view.
// Initialized from the ui theme system via initStyles().
var (
	panelStyle  lipgloss.Style
	titleStyle  lipgloss.Style
	lineStyle   lipgloss.Style
	doneStyle   lipgloss.Style
	pausedStyle lipgloss.Style
	helpStyle   lipgloss.Style
)

func init() {
	initStyles()
}

// initStyles rebuilds all view styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has run.
func initStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	lineStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	doneStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Success)

	pausedStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	helpStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
