package storage

// Keys owned by the dashboard. ClearAll wipes exactly this set, nothing else
// sharing the database is touched.
const (
	KeyHabits       = "dashboard_habits"
	KeyTasks        = "dashboard_tasks"
	KeyMood         = "dashboard_mood"
	KeyLastReset    = "dashboard_last_reset"
	KeyHistory      = "dashboard_history"
	KeyPoints       = "gamification_points"
	KeyLevel        = "gamification_level"
	KeyAchievements = "gamification_achievements"
)

// OwnedKeys lists every key the dashboard persists under.
func OwnedKeys() []string {
	return []string{
		KeyHabits,
		KeyTasks,
		KeyMood,
		KeyLastReset,
		KeyHistory,
		KeyPoints,
		KeyLevel,
		KeyAchievements,
	}
}

// Store is the persistence capability the dashboard core depends on.
// Values are JSON-serializable blobs with overwrite semantics.
//
// Load fails closed: it returns false (leaving dest untouched) when the key
// is absent or the stored value is unreadable, so callers keep their default.
// No Load or Save failure is ever fatal; the dashboard continues from
// in-memory state.
type Store interface {
	Save(key string, v any) error
	Load(key string, dest any) bool
	Remove(key string) error
	ClearAll() error
}
