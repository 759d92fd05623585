package engine

// Inputs is everything an achievement condition may look at.
type Inputs struct {
	CompletedHabits int
	CompletedTasks  int
	CurrentStreak   int
	TotalPoints     int
	Level           int
}

// Achievement is one entry of the fixed catalog. IDs are immutable once
// shipped: persisted unlocks reference them, and changing an id would orphan
// existing unlocks.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Condition   func(Inputs) bool
}

// Catalog returns the full achievement table in unlock-evaluation order.
// Catalog order is the tie-break when several conditions become true at once.
func Catalog() []Achievement {
	return []Achievement{
		{
			ID: "first_habit", Name: "First Steps", Icon: "👶",
			Description: "Complete your first habit",
			Condition:   func(in Inputs) bool { return in.CompletedHabits >= 1 },
		},
		{
			ID: "habit_master", Name: "Habit Master", Icon: "🏆",
			Description: "Complete all habits in a day",
			Condition:   func(in Inputs) bool { return in.CompletedHabits >= 3 },
		},
		{
			ID: "task_warrior", Name: "Task Warrior", Icon: "⚔️",
			Description: "Complete 5 tasks in a day",
			Condition:   func(in Inputs) bool { return in.CompletedTasks >= 5 },
		},
		{
			ID: "streak_3", Name: "3-Day Streak", Icon: "🔥",
			Description: "Maintain a 3-day streak",
			Condition:   func(in Inputs) bool { return in.CurrentStreak >= 3 },
		},
		{
			ID: "streak_7", Name: "Week Champion", Icon: "👑",
			Description: "Maintain a 7-day streak",
			Condition:   func(in Inputs) bool { return in.CurrentStreak >= 7 },
		},
		{
			ID: "streak_30", Name: "Monthly Legend", Icon: "🦸",
			Description: "Maintain a 30-day streak",
			Condition:   func(in Inputs) bool { return in.CurrentStreak >= 30 },
		},
		{
			ID: "points_100", Name: "Century Club", Icon: "💯",
			Description: "Earn 100 points",
			Condition:   func(in Inputs) bool { return in.TotalPoints >= 100 },
		},
		{
			ID: "points_500", Name: "High Achiever", Icon: "🌟",
			Description: "Earn 500 points",
			Condition:   func(in Inputs) bool { return in.TotalPoints >= 500 },
		},
		{
			ID: "level_5", Name: "Level 5", Icon: "🎖️",
			Description: "Reach level 5",
			Condition:   func(in Inputs) bool { return in.Level >= 5 },
		},
		{
			ID: "level_10", Name: "Elite Player", Icon: "💎",
			Description: "Reach level 10",
			Condition:   func(in Inputs) bool { return in.Level >= 10 },
		},
	}
}

// CatalogByID looks up a catalog entry.
func CatalogByID(id string) (Achievement, bool) {
	for _, a := range Catalog() {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
