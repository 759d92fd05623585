package history

import "time"

// dayLayout formats a local calendar day, the grouping key for all history.
const dayLayout = "2006-01-02"

// DayKey identifies one local calendar day (YYYY-MM-DD).
type DayKey string

// Day derives the calendar-day key for the given wall-clock time.
func Day(t time.Time) DayKey {
	return DayKey(t.In(time.Local).Format(dayLayout))
}

// Time returns the midnight instant of the day. A malformed key yields the
// zero time, which never matches any real day arithmetic.
func (d DayKey) Time() time.Time {
	t, err := time.ParseInLocation(dayLayout, string(d), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (d DayKey) Prev() DayKey {
	return Day(d.Time().AddDate(0, 0, -1))
}

func (d DayKey) Next() DayKey {
	return Day(d.Time().AddDate(0, 0, 1))
}

// Label renders the short weekday name ("Mon"), used for chart axes.
func (d DayKey) Label() string {
	return d.Time().Format("Mon")
}

// DailyRecord summarizes one calendar day's completion. There is at most one
// per day; re-recording the same day overwrites (last write wins).
type DailyRecord struct {
	Date              DayKey `json:"date"`
	CompletedHabits   int    `json:"completedHabits"`
	TotalHabits       int    `json:"totalHabits"`
	CompletedTasks    int    `json:"completedTasks"`
	TotalTasks        int    `json:"totalTasks"`
	AllHabitsComplete bool   `json:"allHabitsComplete"`
	RecordedAt        int64  `json:"timestamp"` // unix millis, tie-breaking only
}

// Qualifies reports whether the day counts toward a streak. A day with zero
// habits defined never qualifies, regardless of the stored flag: an empty
// day must not produce a trivially infinite streak.
func (r DailyRecord) Qualifies() bool {
	return r.TotalHabits > 0 && r.CompletedHabits == r.TotalHabits
}
