package engine

const (
	PointsPerHabit     = 10
	PointsPerTask      = 5
	PointsPerStreakDay = 15

	// LevelStep is the points needed for each level.
	LevelStep = 100
)

// ComputePoints converts the instantaneous completion counts and streak into
// a point total. This is a snapshot, not an accumulator: habits and tasks
// reset daily, so the stored total latches the peak-of-day value instead of
// summing repeated readings (see State.Apply).
func ComputePoints(completedHabits, completedTasks, currentStreak int) int {
	return completedHabits*PointsPerHabit +
		completedTasks*PointsPerTask +
		currentStreak*PointsPerStreakDay
}

// LevelForPoints derives the level from a point total. Level 1 starts at 0
// points; every LevelStep points is one level.
func LevelForPoints(totalPoints int) int {
	if totalPoints < 0 {
		totalPoints = 0
	}
	return totalPoints/LevelStep + 1
}

// LevelProgress describes position within the current level.
type LevelProgress struct {
	Progress   int     // points into the current level (not clamped)
	Needed     int     // points spanning the current level
	Percentage float64 // clamped to [0, 100] for display
}

// ProgressForLevel computes the level-progress tuple for a point total.
func ProgressForLevel(totalPoints, level int) LevelProgress {
	floor := (level - 1) * LevelStep
	ceiling := level * LevelStep
	progress := totalPoints - floor
	needed := ceiling - floor

	pct := 100 * float64(progress) / float64(needed)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return LevelProgress{Progress: progress, Needed: needed, Percentage: pct}
}
