// Package tui renders a live full-screen progress view with bubbletea.
// The simulated workload advances inside the event loop, so the process and
// estimator stay on a single logical thread as the core requires.
package tui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/stepbar/internal/config"
	"github.com/agbru/stepbar/internal/estimate"
	"github.com/agbru/stepbar/internal/format"
	"github.com/agbru/stepbar/internal/progress"
)

// stepMsg advances the simulated workload by one batch.
type stepMsg struct{}

// Model is the root bubbletea model for the live view.
type Model struct {
	proc *progress.Process
	est  *estimate.Estimator

	display format.Config
	batch   int
	delay   time.Duration

	keymap KeyMap
	help   help.Model

	width  int
	done   bool
	paused bool
}

// NewModel builds the live view around an already-constructed process and
// estimator. Both must still be in their initial state.
func NewModel(proc *progress.Process, est *estimate.Estimator, cfg config.AppConfig) Model {
	return Model{
		proc:    proc,
		est:     est,
		display: config.DisplayConfig(cfg),
		batch:   cfg.BatchSize,
		delay:   cfg.StepDelay,
		keymap:  DefaultKeyMap(),
		help:    help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// tick schedules the next workload batch.
func (m Model) tick() tea.Cmd {
	d := m.delay
	if d <= 0 {
		d = time.Millisecond
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return stepMsg{} })
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Pause):
			if !m.done {
				m.paused = !m.paused
				if !m.paused {
					return m, m.tick()
				}
			}
			return m, nil
		}
		return m, nil

	case stepMsg:
		if m.done || m.paused {
			return m, nil
		}
		remaining := m.proc.TotalSteps() - m.proc.CurrentStep()
		batch := m.batch
		if batch > remaining {
			batch = remaining
		}
		if err := m.proc.Update(batch); err != nil {
			m.done = true
			return m, tea.Quit
		}
		if m.proc.CurrentStep() >= m.proc.TotalSteps() {
			m.done = true
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	line := m.display.FormatLine(m.proc.CurrentStep(), m.proc.TotalSteps(), m.est)

	var body string
	switch {
	case m.done:
		body = doneStyle.Render(line) + "\n" + doneStyle.Render("complete")
	case m.paused:
		body = lineStyle.Render(line) + "\n" + pausedStyle.Render("paused")
	default:
		body = lineStyle.Render(line)
	}

	panel := panelStyle.Render(titleStyle.Render("stepbar") + "\n" + body)
	return lipgloss.JoinVertical(lipgloss.Left,
		panel,
		helpStyle.Render(m.help.View(m.keymap)),
	)
}

// Run drives the live view to completion or until the user quits. Canceling
// ctx stops the program as if the user had quit.
func Run(ctx context.Context, proc *progress.Process, est *estimate.Estimator, cfg config.AppConfig, out io.Writer) error {
	initStyles()
	program := tea.NewProgram(NewModel(proc, est, cfg),
		tea.WithOutput(out), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
