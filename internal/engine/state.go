package engine

import (
	"slices"

	"habitdash/internal/storage"
)

// State holds the persisted gamification progress: the latched point total,
// the derived level, and the ordered unlocked-achievement sequence. Each
// field is saved immediately on change; a crash between saves can leave them
// inconsistent, which is acceptable because points and level re-derive on
// the next reading.
type State struct {
	store storage.Store

	TotalPoints int
	Level       int
	Unlocked    []string // achievement ids in unlock order

	pending *Achievement // most recent unlock, not yet dismissed
}

func LoadState(store storage.Store) *State {
	s := &State{store: store, Level: 1}
	store.Load(storage.KeyPoints, &s.TotalPoints)
	store.Load(storage.KeyLevel, &s.Level)
	store.Load(storage.KeyAchievements, &s.Unlocked)

	if s.TotalPoints < 0 {
		s.TotalPoints = 0
	}
	// The stored level is a cache; never trust it below the derived value.
	if derived := LevelForPoints(s.TotalPoints); s.Level < derived {
		s.Level = derived
	}
	return s
}

// Apply feeds one reading of the instantaneous inputs through the engine:
// latch the point total, derive the level, and emit any newly-unlocked
// achievements in catalog order. Re-applying identical inputs emits nothing.
func (s *State) Apply(completedHabits, completedTasks, currentStreak int) []Achievement {
	computed := ComputePoints(completedHabits, completedTasks, currentStreak)
	if computed > s.TotalPoints {
		s.TotalPoints = computed
		_ = s.store.Save(storage.KeyPoints, s.TotalPoints)

		if level := LevelForPoints(s.TotalPoints); level > s.Level {
			s.Level = level
			_ = s.store.Save(storage.KeyLevel, s.Level)
		}
	}

	in := Inputs{
		CompletedHabits: completedHabits,
		CompletedTasks:  completedTasks,
		CurrentStreak:   currentStreak,
		TotalPoints:     s.TotalPoints,
		Level:           s.Level,
	}

	var unlocked []Achievement
	for _, a := range Catalog() {
		if !a.Condition(in) || s.HasUnlocked(a.ID) {
			continue
		}
		s.Unlocked = append(s.Unlocked, a.ID)
		_ = s.store.Save(storage.KeyAchievements, s.Unlocked)
		unlocked = append(unlocked, a)
	}
	if len(unlocked) > 0 {
		last := unlocked[len(unlocked)-1]
		s.pending = &last
	}
	return unlocked
}

func (s *State) HasUnlocked(id string) bool {
	return slices.Contains(s.Unlocked, id)
}

// Progress returns the position within the current level.
func (s *State) Progress() LevelProgress {
	return ProgressForLevel(s.TotalPoints, s.Level)
}

// PendingUnlock returns the most recently unlocked achievement that has not
// been dismissed yet, for transient notification. Display timing belongs to
// the presentation layer.
func (s *State) PendingUnlock() *Achievement {
	return s.pending
}

func (s *State) DismissUnlock() {
	s.pending = nil
}
