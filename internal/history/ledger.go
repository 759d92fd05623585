package history

import (
	"sort"
	"time"

	"habitdash/internal/storage"
)

// Ledger owns the per-day completion records. All temporal metrics (streaks,
// charts) derive from its contents. Records are never deleted automatically;
// unbounded growth is accepted for a single-user local ledger.
type Ledger struct {
	store storage.Store
	now   func() time.Time
	days  map[DayKey]DailyRecord
}

func NewLedger(store storage.Store, now func() time.Time) *Ledger {
	l := &Ledger{
		store: store,
		now:   now,
		days:  map[DayKey]DailyRecord{},
	}
	l.store.Load(storage.KeyHistory, &l.days)
	if l.days == nil {
		l.days = map[DayKey]DailyRecord{}
	}
	return l
}

// RecordToday builds or overwrites today's record from the current completion
// counts and persists the ledger. Safe to call on every state change.
func (l *Ledger) RecordToday(completedHabits, totalHabits, completedTasks, totalTasks int) DailyRecord {
	now := l.now()
	rec := DailyRecord{
		Date:              Day(now),
		CompletedHabits:   completedHabits,
		TotalHabits:       totalHabits,
		CompletedTasks:    completedTasks,
		TotalTasks:        totalTasks,
		AllHabitsComplete: totalHabits > 0 && completedHabits == totalHabits,
		RecordedAt:        now.UnixMilli(),
	}
	l.days[rec.Date] = rec
	_ = l.store.Save(storage.KeyHistory, l.days)
	return rec
}

// Get returns the record for a day, if any.
func (l *Ledger) Get(day DayKey) (DailyRecord, bool) {
	rec, ok := l.days[day]
	return rec, ok
}

// Len returns how many days have a record.
func (l *Ledger) Len() int {
	return len(l.days)
}

// Recent returns up to n records, most recent first by recording timestamp,
// so a same-day overwrite surfaces the last write.
func (l *Ledger) Recent(n int) []DailyRecord {
	recs := make([]DailyRecord, 0, len(l.days))
	for _, rec := range l.days {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].RecordedAt > recs[j].RecordedAt })
	if n >= 0 && len(recs) > n {
		recs = recs[:n]
	}
	return recs
}

// Chronological returns every record sorted by ascending calendar day.
func (l *Ledger) Chronological() []DailyRecord {
	recs := make([]DailyRecord, 0, len(l.days))
	for _, rec := range l.days {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Date < recs[j].Date })
	return recs
}
