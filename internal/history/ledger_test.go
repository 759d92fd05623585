package history

import (
	"testing"
	"time"

	"habitdash/internal/storage"
)

func TestRecordTodayOverwritesSameDay(t *testing.T) {
	l, now := newTestLedger(t)

	l.RecordToday(1, 3, 0, 2)
	*now = now.Add(2 * time.Hour)
	l.RecordToday(3, 3, 2, 2)

	if l.Len() != 1 {
		t.Fatalf("Len()=%d, want 1 (one record per calendar day)", l.Len())
	}
	rec, ok := l.Get(Day(*now))
	if !ok {
		t.Fatalf("missing record for today")
	}
	if rec.CompletedHabits != 3 || rec.CompletedTasks != 2 {
		t.Fatalf("record=%+v, want last write to win", rec)
	}
	if !rec.AllHabitsComplete {
		t.Fatalf("expected AllHabitsComplete after 3/3")
	}
}

func TestRecordTodayDerivesCompleteFlag(t *testing.T) {
	l, _ := newTestLedger(t)

	rec := l.RecordToday(0, 0, 4, 4)
	if rec.AllHabitsComplete {
		t.Fatalf("a day with zero habits defined must never be marked complete")
	}
}

func TestRecentOrdersByRecordingTime(t *testing.T) {
	l, now := newTestLedger(t)

	*now = now.AddDate(0, 0, -2)
	l.RecordToday(1, 1, 0, 0)
	*now = now.AddDate(0, 0, 1)
	l.RecordToday(2, 2, 0, 0)
	*now = now.AddDate(0, 0, 1)
	l.RecordToday(3, 3, 0, 0)

	recent := l.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("len(Recent(2))=%d, want 2", len(recent))
	}
	if recent[0].TotalHabits != 3 || recent[1].TotalHabits != 2 {
		t.Fatalf("Recent not most-recent-first: %+v", recent)
	}

	all := l.Recent(10)
	if len(all) != 3 {
		t.Fatalf("len(Recent(10))=%d, want 3", len(all))
	}
}

func TestLedgerPersistsAcrossReload(t *testing.T) {
	st := storage.NewMemoryStore()
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local)
	clock := func() time.Time { return now }

	l := NewLedger(st, clock)
	now = now.AddDate(0, 0, -1)
	l.RecordToday(2, 2, 1, 1)
	now = now.AddDate(0, 0, 1)
	l.RecordToday(1, 2, 0, 1)

	reloaded := NewLedger(st, clock)
	if reloaded.Len() != 2 {
		t.Fatalf("reloaded Len()=%d, want 2", reloaded.Len())
	}
	for _, want := range l.Chronological() {
		got, ok := reloaded.Get(want.Date)
		if !ok {
			t.Fatalf("missing %s after reload", want.Date)
		}
		if got != want {
			t.Fatalf("record %s = %+v, want %+v", want.Date, got, want)
		}
	}
}
