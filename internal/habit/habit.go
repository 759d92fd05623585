package habit

// Kind distinguishes a simple check-off habit from a counter habit that is
// done once its counter reaches the target.
type Kind string

const (
	KindCheck   Kind = ""
	KindCounter Kind = "counter"
)

type Habit struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Duration  string `json:"duration,omitempty"`
	Icon      string `json:"icon"`
	Kind      Kind   `json:"type,omitempty"`
	Target    int    `json:"target,omitempty"`
	Current   int    `json:"current,omitempty"`
	Completed bool   `json:"completed"`
	Custom    bool   `json:"custom"`
}

// Done reports whether the habit counts as completed today.
func (h Habit) Done() bool {
	if h.Kind == KindCounter {
		return h.Target > 0 && h.Current >= h.Target
	}
	return h.Completed
}

// Defaults are the habits a fresh dashboard starts with.
func Defaults() []Habit {
	return []Habit{
		{ID: "exercise", Name: "Exercise", Duration: "30 min", Icon: "dumbbell"},
		{ID: "reading", Name: "Reading", Duration: "20 min", Icon: "book"},
		{ID: "water", Name: "Water", Icon: "droplet", Kind: KindCounter, Target: 8},
	}
}
