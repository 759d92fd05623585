package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"habitdash/internal/storage"
)

// Repo holds the task list. Like the habit repo it is a plain state holder
// feeding counts into the core.
type Repo struct {
	store storage.Store
	now   func() time.Time
	tasks []Task
}

func NewRepo(store storage.Store, now func() time.Time) *Repo {
	r := &Repo{store: store, now: now}
	store.Load(storage.KeyTasks, &r.tasks)
	return r
}

// List returns tasks, optionally filtered by category (CategoryAll = no filter).
func (r *Repo) List(filter Category) []Task {
	var out []Task
	for _, t := range r.tasks {
		if filter == CategoryAll || filter == "" || t.Category == filter {
			out = append(out, t)
		}
	}
	return out
}

func (r *Repo) Get(id string) (Task, bool) {
	for _, t := range r.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

func (r *Repo) Add(text string, category Category) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, errors.New("task text is required")
	}
	if !category.IsValid() {
		category = DefaultCategory
	}
	t := Task{
		ID:        uuid.NewString(),
		Text:      text,
		Category:  category,
		CreatedAt: r.now(),
	}
	r.tasks = append(r.tasks, t)
	r.persist()
	return t, nil
}

func (r *Repo) Toggle(id string) error {
	return r.update(id, func(t *Task) error {
		t.Completed = !t.Completed
		return nil
	})
}

func (r *Repo) Edit(id, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errors.New("task text is required")
	}
	return r.update(id, func(t *Task) error {
		t.Text = text
		return nil
	})
}

func (r *Repo) SetCategory(id string, category Category) error {
	if !category.IsValid() {
		return fmt.Errorf("invalid category: %q", category)
	}
	return r.update(id, func(t *Task) error {
		t.Category = category
		return nil
	})
}

func (r *Repo) Delete(id string) error {
	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			r.persist()
			return nil
		}
	}
	return fmt.Errorf("task %s not found", id)
}

// ClearCompleted removes every completed task and returns how many went.
func (r *Repo) ClearCompleted() int {
	kept := r.tasks[:0]
	removed := 0
	for _, t := range r.tasks {
		if t.Completed {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	r.tasks = kept
	if removed > 0 {
		r.persist()
	}
	return removed
}

// Counts returns (completed, total).
func (r *Repo) Counts() (int, int) {
	done := 0
	for _, t := range r.tasks {
		if t.Completed {
			done++
		}
	}
	return done, len(r.tasks)
}

// CountByCategory returns how many tasks carry the category.
func (r *Repo) CountByCategory(category Category) int {
	n := 0
	for _, t := range r.tasks {
		if t.Category == category {
			n++
		}
	}
	return n
}

func (r *Repo) update(id string, fn func(*Task) error) error {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			if err := fn(&r.tasks[i]); err != nil {
				return err
			}
			r.persist()
			return nil
		}
	}
	return fmt.Errorf("task %s not found", id)
}

func (r *Repo) persist() {
	_ = r.store.Save(storage.KeyTasks, r.tasks)
}
