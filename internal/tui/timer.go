package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"habitdash/internal/pomodoro"
	"habitdash/internal/ui"
)

type tickMsg time.Time

type timerModel struct {
	timer   *pomodoro.Timer
	lastLog string
}

func newTimerModel() timerModel {
	return timerModel{timer: pomodoro.NewTimer(), lastLog: "Press s to start."}
}

func (m timerModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.timer.Tick(time.Second) {
			if m.timer.Phase == pomodoro.PhaseBreak {
				m.lastLog = fmt.Sprintf("Session %d done — take a break (s to start).", m.timer.CompletedSessions)
			} else {
				m.lastLog = "Break over — back to work (s to start)."
			}
		}
		return m, tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "s", " ":
			m.timer.ToggleRunning()
			if m.timer.Running {
				m.lastLog = "Running."
			} else {
				m.lastLog = "Paused."
			}
			return m, nil
		case "r":
			m.timer.Reset()
			m.lastLog = "Reset."
			return m, nil
		}
	}
	return m, nil
}

func (m timerModel) View() string {
	phase := ui.Good.Render("work")
	if m.timer.Phase == pomodoro.PhaseBreak {
		phase = ui.Warn.Render("break")
	}
	bar := ui.ProgressBar(int(m.timer.Percentage()), 100, 30)

	return ui.Heading(ui.IconTimer, "Focus") + "\n\n" +
		"  " + ui.Title.Render(m.timer.Clock()) + "  " + phase + "\n" +
		"  " + ui.Muted.Render(bar) + "\n\n" +
		"  " + ui.LabelValue("Completed sessions", m.timer.CompletedSessions) + "\n\n" +
		ui.Muted.Render("s start/pause · r reset · q quit") + "\n" +
		m.lastLog + "\n"
}
