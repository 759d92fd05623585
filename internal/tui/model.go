package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"habitdash/internal/engine"
	"habitdash/internal/habit"
	"habitdash/internal/mood"
	"habitdash/internal/task"
	"habitdash/internal/ui"
)

// toastDuration is how long a fresh achievement unlock stays on screen.
const toastDuration = 3 * time.Second

type rowKind int

const (
	rowHabit rowKind = iota
	rowTask
)

type row struct {
	kind rowKind
	id   string
}

type toastExpiredMsg struct{}

type dashboardModel struct {
	svc *engine.Service

	width  int
	height int

	snap     engine.Snapshot
	habits   []habit.Habit
	tasks    []task.Task
	selected int

	toast   *engine.Achievement
	lastLog string

	initCmd tea.Cmd
}

func newDashboardModel(svc *engine.Service) dashboardModel {
	m := dashboardModel{svc: svc, lastLog: "Loaded."}
	m.initCmd = m.reload(svc.Refresh())
	return m
}

func (m dashboardModel) Init() tea.Cmd {
	return m.initCmd
}

// reload pulls fresh repo contents and surfaces any new unlock as a toast.
func (m *dashboardModel) reload(snap engine.Snapshot) tea.Cmd {
	m.snap = snap
	m.habits = m.svc.Habits().List()
	m.tasks = m.svc.Tasks().List(task.CategoryAll)
	if rows := m.rows(); m.selected >= len(rows) {
		m.selected = len(rows) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}

	if pending := m.svc.State().PendingUnlock(); pending != nil {
		m.toast = pending
		m.svc.State().DismissUnlock()
		return tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{} })
	}
	return nil
}

func (m dashboardModel) rows() []row {
	out := make([]row, 0, len(m.habits)+len(m.tasks))
	for _, h := range m.habits {
		out = append(out, row{kind: rowHabit, id: h.ID})
	}
	for _, t := range m.tasks {
		out = append(out, row{kind: rowTask, id: t.ID})
	}
	return out
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case toastExpiredMsg:
		m.toast = nil
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(m.rows())-1 {
			m.selected++
		}
		return m, nil
	case "r":
		cmd := m.reload(m.svc.Refresh())
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, cmd
	case "m":
		return m.cycleMood()
	case "enter", " ":
		return m.toggleSelected()
	case "+", "=":
		return m.adjustCounter(+1)
	case "-":
		return m.adjustCounter(-1)
	}
	return m, nil
}

func (m dashboardModel) cycleMood() (tea.Model, tea.Cmd) {
	order := []mood.Mood{mood.MoodHappy, mood.MoodNeutral, mood.MoodSad}
	next := order[0]
	if cur, ok := m.svc.Mood().Current(); ok {
		for i, mo := range order {
			if mo == cur {
				next = order[(i+1)%len(order)]
				break
			}
		}
	}
	if err := m.svc.Mood().Set(next); err != nil {
		m.lastLog = err.Error()
		return m, nil
	}
	m.lastLog = "Mood: " + next.Icon()
	return m, nil
}

func (m dashboardModel) toggleSelected() (tea.Model, tea.Cmd) {
	rows := m.rows()
	if m.selected < 0 || m.selected >= len(rows) {
		return m, nil
	}
	r := rows[m.selected]

	var err error
	switch r.kind {
	case rowHabit:
		h, ok := m.svc.Habits().Get(r.id)
		if ok && h.Kind == habit.KindCounter {
			err = m.svc.Habits().Increment(r.id)
		} else {
			err = m.svc.Habits().Toggle(r.id)
		}
	case rowTask:
		err = m.svc.Tasks().Toggle(r.id)
	}
	if err != nil {
		m.lastLog = err.Error()
		return m, nil
	}
	cmd := m.reload(m.svc.Refresh())
	m.lastLog = "Updated."
	return m, cmd
}

func (m dashboardModel) adjustCounter(delta int) (tea.Model, tea.Cmd) {
	rows := m.rows()
	if m.selected < 0 || m.selected >= len(rows) {
		return m, nil
	}
	r := rows[m.selected]
	if r.kind != rowHabit {
		return m, nil
	}
	h, ok := m.svc.Habits().Get(r.id)
	if !ok || h.Kind != habit.KindCounter {
		return m, nil
	}

	var err error
	if delta > 0 {
		err = m.svc.Habits().Increment(r.id)
	} else {
		err = m.svc.Habits().Decrement(r.id)
	}
	if err != nil {
		m.lastLog = err.Error()
		return m, nil
	}
	cmd := m.reload(m.svc.Refresh())
	m.lastLog = "Updated."
	return m, cmd
}

func (m dashboardModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 30
	if m.width > 0 {
		if maxLeft := m.width / 2; maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l, r := "", ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW) + "  " + r + "\n")
	}

	return header + "\n\n" + body.String() + footer
}

func (m dashboardModel) renderHeader() string {
	p := m.snap.Progress
	bar := ui.ProgressBar(p.Progress, p.Needed, 20)
	return ui.Heading(ui.IconSparkle, "Habit Dashboard") + "  " +
		ui.LabelValue("Level", m.snap.Level) + "  " +
		ui.LabelValue("Points", m.snap.TotalPoints) + "  " +
		ui.Muted.Render(fmt.Sprintf("%s %d/%d", bar, p.Progress, p.Needed))
}

func (m dashboardModel) renderSidebar() string {
	var b strings.Builder
	b.WriteString(ui.H2.Render("Today") + "\n")
	b.WriteString(fmt.Sprintf("%s Streak: %s\n", ui.IconFire, ui.Gold.Render(fmt.Sprintf("%d day(s)", m.snap.CurrentStreak))))
	b.WriteString(fmt.Sprintf("%s Best:   %d day(s)\n", ui.IconTrophy, m.snap.BestStreak))
	b.WriteString(fmt.Sprintf("%s Habits: %d/%d\n", ui.IconLoop, m.snap.CompletedHabits, m.snap.TotalHabits))
	b.WriteString(fmt.Sprintf("%s Tasks:  %d/%d\n", ui.IconTask, m.snap.CompletedTasks, m.snap.TotalTasks))

	moodLabel := ui.Muted.Render("not set")
	if cur, ok := m.svc.Mood().Current(); ok {
		moodLabel = cur.Icon() + " " + string(cur)
	}
	b.WriteString("Mood:  " + moodLabel + "\n")
	return b.String()
}

func (m dashboardModel) renderMain() string {
	var b strings.Builder
	rows := m.rows()
	i := 0

	b.WriteString(ui.H2.Render("Habits") + "\n")
	for _, h := range m.habits {
		b.WriteString(m.renderRow(i, rows, habitLine(h)) + "\n")
		i++
	}

	b.WriteString("\n" + ui.H2.Render("Tasks") + "\n")
	if len(m.tasks) == 0 {
		b.WriteString(ui.Muted.Render("  (no tasks — add one with `hd task add`)") + "\n")
	}
	for _, t := range m.tasks {
		line := fmt.Sprintf("%s %s %s", ui.Checkbox(t.Completed), t.Text, ui.Muted.Render("("+string(t.Category)+")"))
		b.WriteString(m.renderRow(i, rows, line) + "\n")
		i++
	}
	return b.String()
}

func (m dashboardModel) renderRow(i int, rows []row, line string) string {
	cursor := "  "
	if i == m.selected && i < len(rows) {
		cursor = ui.SelectedRow.Render("> ")
		return cursor + ui.SelectedRow.Render(line)
	}
	return cursor + line
}

func habitLine(h habit.Habit) string {
	if h.Kind == habit.KindCounter {
		return fmt.Sprintf("%s %s %s", ui.Checkbox(h.Done()), h.Name, ui.Muted.Render(fmt.Sprintf("%d/%d", h.Current, h.Target)))
	}
	line := fmt.Sprintf("%s %s", ui.Checkbox(h.Done()), h.Name)
	if h.Duration != "" {
		line += " " + ui.Muted.Render("("+h.Duration+")")
	}
	return line
}

func (m dashboardModel) renderFooter() string {
	footer := "\n" + ui.Muted.Render("space toggle · +/- counter · m mood · r refresh · q quit") + "\n" + m.lastLog
	if m.toast != nil {
		footer += "\n" + ui.Toast.Render(fmt.Sprintf("%s Achievement unlocked: %s %s", m.toast.Icon, m.toast.Name, ui.Muted.Render("— "+m.toast.Description)))
	}
	return footer
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
