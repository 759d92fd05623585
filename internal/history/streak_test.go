package history

import (
	"testing"
	"time"

	"habitdash/internal/storage"
)

// newTestLedger returns a ledger with a mutable clock. Tests move *now
// between RecordToday calls to lay down history.
func newTestLedger(t *testing.T) (*Ledger, *time.Time) {
	t.Helper()
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)
	l := NewLedger(storage.NewMemoryStore(), func() time.Time { return now })
	return l, &now
}

func TestEmptyLedgerHasNoStreak(t *testing.T) {
	l, _ := newTestLedger(t)
	if got := l.CurrentStreak(); got != 0 {
		t.Fatalf("CurrentStreak()=%d, want 0", got)
	}
	if got := l.BestStreak(); got != 0 {
		t.Fatalf("BestStreak()=%d, want 0", got)
	}
}

func TestSingleQualifyingDayToday(t *testing.T) {
	l, _ := newTestLedger(t)
	l.RecordToday(3, 3, 0, 0)

	if got := l.CurrentStreak(); got != 1 {
		t.Fatalf("CurrentStreak()=%d, want 1", got)
	}
	if got := l.BestStreak(); got != 1 {
		t.Fatalf("BestStreak()=%d, want 1", got)
	}
}

func TestIncompleteTodayTerminatesWalk(t *testing.T) {
	l, now := newTestLedger(t)

	// Two complete days, then an incomplete today.
	*now = now.AddDate(0, 0, -2)
	l.RecordToday(3, 3, 0, 0)
	*now = now.AddDate(0, 0, 1)
	l.RecordToday(3, 3, 0, 0)
	*now = now.AddDate(0, 0, 1)
	l.RecordToday(1, 3, 0, 0)

	if got := l.CurrentStreak(); got != 0 {
		t.Fatalf("CurrentStreak()=%d, want 0 (incomplete today breaks the streak)", got)
	}
	if got := l.BestStreak(); got != 2 {
		t.Fatalf("BestStreak()=%d, want 2", got)
	}
}

func TestThreeDayRunEndingToday(t *testing.T) {
	l, now := newTestLedger(t)

	// 3 days ago: not recorded. Then today-2, today-1, today all complete.
	*now = now.AddDate(0, 0, -2)
	l.RecordToday(2, 2, 1, 1)
	*now = now.AddDate(0, 0, 1)
	l.RecordToday(2, 2, 0, 1)
	*now = now.AddDate(0, 0, 1)
	l.RecordToday(2, 2, 1, 2)

	if got := l.CurrentStreak(); got != 3 {
		t.Fatalf("CurrentStreak()=%d, want 3", got)
	}
}

func TestBestStreakSurvivesGap(t *testing.T) {
	l, now := newTestLedger(t)

	// 4-day run, 1-day gap, then a 2-day run ending today.
	*now = now.AddDate(0, 0, -6)
	for i := 0; i < 4; i++ {
		l.RecordToday(3, 3, 0, 0)
		*now = now.AddDate(0, 0, 1)
	}
	// Gap day: nothing recorded.
	*now = now.AddDate(0, 0, 1)
	l.RecordToday(3, 3, 0, 0)
	*now = now.AddDate(0, 0, 1)
	l.RecordToday(3, 3, 0, 0)

	if got := l.CurrentStreak(); got != 2 {
		t.Fatalf("CurrentStreak()=%d, want 2", got)
	}
	if got := l.BestStreak(); got != 4 {
		t.Fatalf("BestStreak()=%d, want 4", got)
	}
}

func TestZeroHabitDayNeverQualifies(t *testing.T) {
	l, now := newTestLedger(t)

	*now = now.AddDate(0, 0, -1)
	l.RecordToday(0, 0, 5, 5)
	*now = now.AddDate(0, 0, 1)
	l.RecordToday(0, 0, 5, 5)

	if got := l.CurrentStreak(); got != 0 {
		t.Fatalf("CurrentStreak()=%d, want 0 for zero-habit days", got)
	}
	if got := l.BestStreak(); got != 0 {
		t.Fatalf("BestStreak()=%d, want 0 for zero-habit days", got)
	}
}

func TestStreakToleratesCorruptCompleteFlag(t *testing.T) {
	// A record claiming completeness with zero habits defined must still be
	// ignored by both streak walks.
	l, _ := newTestLedger(t)
	today := Day(l.now())
	l.days[today] = DailyRecord{
		Date:              today,
		TotalHabits:       0,
		CompletedHabits:   0,
		AllHabitsComplete: true,
		RecordedAt:        l.now().UnixMilli(),
	}

	if got := l.CurrentStreak(); got != 0 {
		t.Fatalf("CurrentStreak()=%d, want 0", got)
	}
	if got := l.BestStreak(); got != 0 {
		t.Fatalf("BestStreak()=%d, want 0", got)
	}
}

func TestBestStreakIgnoresNonAdjacentQualifyingDays(t *testing.T) {
	l, now := newTestLedger(t)

	*now = now.AddDate(0, 0, -4)
	l.RecordToday(1, 1, 0, 0)
	*now = now.AddDate(0, 0, 2)
	l.RecordToday(1, 1, 0, 0)
	*now = now.AddDate(0, 0, 2)
	l.RecordToday(1, 1, 0, 0)

	if got := l.BestStreak(); got != 1 {
		t.Fatalf("BestStreak()=%d, want 1 (runs of one, separated by gaps)", got)
	}
}
