package history

// CurrentStreak counts consecutive qualifying days ending today. The walk is
// anchored at today: a missing or incomplete today terminates it immediately,
// so keeping a streak alive requires completing today's habits. That
// anchoring is a product decision, not the only defensible reading.
func (l *Ledger) CurrentStreak() int {
	streak := 0
	for day := Day(l.now()); ; day = day.Prev() {
		rec, ok := l.days[day]
		if !ok || !rec.Qualifies() {
			break
		}
		streak++
	}
	return streak
}

// BestStreak returns the longest run of consecutive qualifying days ever
// recorded. Any non-qualifying day, or a gap of more than one calendar day
// between qualifying days, closes the run.
func (l *Ledger) BestStreak() int {
	best := 0
	run := 0
	var prev DayKey

	for _, rec := range l.Chronological() {
		if !rec.Qualifies() {
			if run > best {
				best = run
			}
			run = 0
			prev = ""
			continue
		}
		if prev != "" && prev.Next() == rec.Date {
			run++
		} else {
			if run > best {
				best = run
			}
			run = 1
		}
		prev = rec.Date
	}
	if run > best {
		best = run
	}
	return best
}
