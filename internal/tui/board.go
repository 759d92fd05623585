package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"habitdash/internal/engine"
)

// RunDashboard opens the interactive dashboard.
func RunDashboard(svc *engine.Service, out io.Writer) error {
	p := tea.NewProgram(newDashboardModel(svc), tea.WithOutput(out))
	_, err := p.Run()
	return err
}

// RunFocus opens the pomodoro focus timer.
func RunFocus(out io.Writer) error {
	p := tea.NewProgram(newTimerModel(), tea.WithOutput(out))
	_, err := p.Run()
	return err
}
