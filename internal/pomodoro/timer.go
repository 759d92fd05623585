package pomodoro

import (
	"fmt"
	"time"
)

const (
	WorkDuration  = 25 * time.Minute
	BreakDuration = 5 * time.Minute
)

type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// Timer is the pomodoro state machine: 25 minutes of work, 5 of break,
// counting completed work sessions. It is fully independent of the
// gamification core and holds no persistent state.
type Timer struct {
	Phase             Phase
	Remaining         time.Duration
	Running           bool
	CompletedSessions int
}

func NewTimer() *Timer {
	return &Timer{Phase: PhaseWork, Remaining: WorkDuration}
}

func (t *Timer) Start() { t.Running = true }
func (t *Timer) Pause() { t.Running = false }

func (t *Timer) ToggleRunning() {
	t.Running = !t.Running
}

// Reset stops the timer and returns to a fresh work phase. The session
// counter is kept.
func (t *Timer) Reset() {
	t.Running = false
	t.Phase = PhaseWork
	t.Remaining = WorkDuration
}

// Tick advances the clock by d. When a work phase runs out the session
// counter increments and a break begins; a finished break starts new work.
// Phase transitions pause the timer so the user starts the next phase
// deliberately. Returns true when a phase ended on this tick.
func (t *Timer) Tick(d time.Duration) bool {
	if !t.Running {
		return false
	}
	t.Remaining -= d
	if t.Remaining > 0 {
		return false
	}
	t.Running = false
	if t.Phase == PhaseWork {
		t.CompletedSessions++
		t.Phase = PhaseBreak
		t.Remaining = BreakDuration
	} else {
		t.Phase = PhaseWork
		t.Remaining = WorkDuration
	}
	return true
}

// Percentage reports phase progress in [0, 100] for rendering.
func (t *Timer) Percentage() float64 {
	total := WorkDuration
	if t.Phase == PhaseBreak {
		total = BreakDuration
	}
	done := total - t.Remaining
	if done < 0 {
		done = 0
	}
	return 100 * float64(done) / float64(total)
}

// Clock renders the remaining time as MM:SS.
func (t *Timer) Clock() string {
	r := t.Remaining
	if r < 0 {
		r = 0
	}
	return fmt.Sprintf("%02d:%02d", int(r.Minutes()), int(r.Seconds())%60)
}
