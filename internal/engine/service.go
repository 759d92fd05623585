package engine

import (
	"fmt"
	"os"
	"time"

	"habitdash/internal/habit"
	"habitdash/internal/history"
	"habitdash/internal/mood"
	"habitdash/internal/storage"
	"habitdash/internal/task"
)

// Service wires the storage capability, the input-side state holders, the
// history ledger, and the gamification state into one synchronous call
// graph. Everything runs on the caller's goroutine; a session has exactly
// one writer, so no locking is needed. Two processes sharing the same
// database are last-write-wins.
type Service struct {
	store storage.Store
	now   func() time.Time

	habits *habit.Repo
	tasks  *task.Repo
	mood   *mood.Tracker
	ledger *history.Ledger
	state  *State
}

func NewService(store storage.Store) *Service {
	return NewServiceClock(store, time.Now)
}

// NewServiceClock injects the clock so day rollover and streak anchoring are
// deterministic in tests.
func NewServiceClock(store storage.Store, now func() time.Time) *Service {
	s := &Service{
		store:  store,
		now:    now,
		habits: habit.NewRepo(store),
		tasks:  task.NewRepo(store, now),
		mood:   mood.NewTracker(store),
		ledger: history.NewLedger(store, now),
		state:  LoadState(store),
	}
	s.rollover()
	return s
}

func (s *Service) Habits() *habit.Repo { return s.habits }
func (s *Service) Tasks() *task.Repo   { return s.tasks }
func (s *Service) Mood() *mood.Tracker { return s.mood }
func (s *Service) Ledger() *history.Ledger {
	return s.ledger
}
func (s *Service) State() *State { return s.state }

// rollover resets the daily inputs (habit completion, mood) when the
// calendar day has changed since the last session. Tasks survive the day.
func (s *Service) rollover() {
	today := string(history.Day(s.now()))
	var last string
	if s.store.Load(storage.KeyLastReset, &last) && last == today {
		return
	}
	if last != "" {
		s.habits.ResetDaily()
		s.mood.Reset()
	}
	if err := s.store.Save(storage.KeyLastReset, today); err != nil {
		s.debugf("save last reset: %v", err)
	}
}

// Snapshot is the presentation-facing view produced by one Refresh.
type Snapshot struct {
	CompletedHabits int
	TotalHabits     int
	CompletedTasks  int
	TotalTasks      int

	CurrentStreak int
	BestStreak    int

	TotalPoints int
	Level       int
	Progress    LevelProgress

	NewUnlocks []Achievement
}

// Refresh runs the core pipeline once: record today's counts into the
// ledger, derive the streaks, latch points and level, and evaluate
// achievement unlocks. Called after every mutating operation.
func (s *Service) Refresh() Snapshot {
	ch, th := s.habits.Counts()
	ct, tt := s.tasks.Counts()

	s.ledger.RecordToday(ch, th, ct, tt)
	cur := s.ledger.CurrentStreak()
	best := s.ledger.BestStreak()

	unlocks := s.state.Apply(ch, ct, cur)

	return Snapshot{
		CompletedHabits: ch,
		TotalHabits:     th,
		CompletedTasks:  ct,
		TotalTasks:      tt,
		CurrentStreak:   cur,
		BestStreak:      best,
		TotalPoints:     s.state.TotalPoints,
		Level:           s.state.Level,
		Progress:        s.state.Progress(),
		NewUnlocks:      unlocks,
	}
}

// HistoryPoint is one charting sample for the recent-history series.
type HistoryPoint struct {
	Day    string
	Date   history.DayKey
	Habits int
	Tasks  int
}

// RecentSeries returns up to n days of charting data, oldest first.
func (s *Service) RecentSeries(n int) []HistoryPoint {
	recs := s.ledger.Recent(n)
	out := make([]HistoryPoint, 0, len(recs))
	for i := len(recs) - 1; i >= 0; i-- {
		rec := recs[i]
		out = append(out, HistoryPoint{
			Day:    rec.Date.Label(),
			Date:   rec.Date,
			Habits: rec.CompletedHabits,
			Tasks:  rec.CompletedTasks,
		})
	}
	return out
}

// WeeklyStats summarizes the recent window for the analytics view.
type WeeklyStats struct {
	Days      int
	AvgHabits float64
	AvgTasks  float64
	BestDay   history.DayKey
}

func (s *Service) Stats(n int) WeeklyStats {
	recs := s.ledger.Recent(n)
	if len(recs) == 0 {
		return WeeklyStats{}
	}
	stats := WeeklyStats{Days: len(recs), BestDay: recs[0].Date}
	bestScore := -1
	sumH, sumT := 0, 0
	for _, rec := range recs {
		sumH += rec.CompletedHabits
		sumT += rec.CompletedTasks
		if score := rec.CompletedHabits + rec.CompletedTasks; score > bestScore {
			bestScore = score
			stats.BestDay = rec.Date
		}
	}
	stats.AvgHabits = float64(sumH) / float64(len(recs))
	stats.AvgTasks = float64(sumT) / float64(len(recs))
	return stats
}

// ResetAll wipes every owned key. The next session starts from defaults.
func (s *Service) ResetAll() error {
	return s.store.ClearAll()
}

func (s *Service) debugf(format string, args ...any) {
	if os.Getenv("HABITDASH_DEBUG") == "" {
		return
	}
	fmt.Fprintf(os.Stderr, "habitdash: "+format+"\n", args...)
}
