package habit

import (
	"fmt"

	"github.com/google/uuid"

	"habitdash/internal/storage"
)

// Repo holds today's habit list. It is a plain state holder: the gamification
// core only consumes its completion counts.
type Repo struct {
	store  storage.Store
	habits []Habit
}

func NewRepo(store storage.Store) *Repo {
	r := &Repo{store: store}
	if !store.Load(storage.KeyHabits, &r.habits) || r.habits == nil {
		r.habits = Defaults()
	}
	return r
}

func (r *Repo) List() []Habit {
	out := make([]Habit, len(r.habits))
	copy(out, r.habits)
	return out
}

func (r *Repo) Get(id string) (Habit, bool) {
	for _, h := range r.habits {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}

// Add creates a custom check habit.
func (r *Repo) Add(name, duration, icon string) Habit {
	if icon == "" {
		icon = "star"
	}
	h := Habit{
		ID:       uuid.NewString(),
		Name:     name,
		Duration: duration,
		Icon:     icon,
		Custom:   true,
	}
	r.habits = append(r.habits, h)
	r.persist()
	return h
}

// Toggle flips a check habit's completion.
func (r *Repo) Toggle(id string) error {
	return r.update(id, func(h *Habit) error {
		if h.Kind == KindCounter {
			return fmt.Errorf("habit %q is a counter, use inc/dec", h.Name)
		}
		h.Completed = !h.Completed
		return nil
	})
}

// Increment bumps a counter habit.
func (r *Repo) Increment(id string) error {
	return r.update(id, func(h *Habit) error {
		if h.Kind != KindCounter {
			return fmt.Errorf("habit %q is not a counter", h.Name)
		}
		h.Current++
		return nil
	})
}

// Decrement lowers a counter habit, clamped at zero.
func (r *Repo) Decrement(id string) error {
	return r.update(id, func(h *Habit) error {
		if h.Kind != KindCounter {
			return fmt.Errorf("habit %q is not a counter", h.Name)
		}
		if h.Current > 0 {
			h.Current--
		}
		return nil
	})
}

func (r *Repo) Delete(id string) error {
	for i, h := range r.habits {
		if h.ID == id {
			r.habits = append(r.habits[:i], r.habits[i+1:]...)
			r.persist()
			return nil
		}
	}
	return fmt.Errorf("habit %s not found", id)
}

// ResetDaily clears completion state for the new day, keeping the habit list.
func (r *Repo) ResetDaily() {
	for i := range r.habits {
		r.habits[i].Completed = false
		if r.habits[i].Kind == KindCounter {
			r.habits[i].Current = 0
		}
	}
	r.persist()
}

// Counts returns (completed, total) for today.
func (r *Repo) Counts() (int, int) {
	done := 0
	for _, h := range r.habits {
		if h.Done() {
			done++
		}
	}
	return done, len(r.habits)
}

func (r *Repo) update(id string, fn func(*Habit) error) error {
	for i := range r.habits {
		if r.habits[i].ID == id {
			if err := fn(&r.habits[i]); err != nil {
				return err
			}
			r.persist()
			return nil
		}
	}
	return fmt.Errorf("habit %s not found", id)
}

func (r *Repo) persist() {
	_ = r.store.Save(storage.KeyHabits, r.habits)
}
