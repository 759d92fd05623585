package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitdash/internal/storage"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	return NewRepo(storage.NewMemoryStore(), time.Now)
}

func TestParseCategoryFallsBack(t *testing.T) {
	assert.Equal(t, CategoryWork, ParseCategory(" Work "))
	assert.Equal(t, CategoryShopping, ParseCategory("shopping"))
	assert.Equal(t, DefaultCategory, ParseCategory(""))
	assert.Equal(t, DefaultCategory, ParseCategory("groceries"))
}

func TestAddTrimsAndValidates(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.Add("   ", CategoryWork)
	assert.Error(t, err)

	task, err := r.Add("  Call dentist  ", CategoryPersonal)
	require.NoError(t, err)
	assert.Equal(t, "Call dentist", task.Text)
	assert.NotEmpty(t, task.ID)
}

func TestListFiltersByCategory(t *testing.T) {
	r := newTestRepo(t)
	_, err := r.Add("Review proposal", CategoryWork)
	require.NoError(t, err)
	_, err = r.Add("Buy milk", CategoryShopping)
	require.NoError(t, err)

	assert.Len(t, r.List(CategoryAll), 2)
	assert.Len(t, r.List(CategoryWork), 1)
	assert.Len(t, r.List(CategoryPersonal), 0)
	assert.Equal(t, 1, r.CountByCategory(CategoryShopping))
}

func TestToggleEditDelete(t *testing.T) {
	r := newTestRepo(t)
	task, err := r.Add("Draft email", CategoryWork)
	require.NoError(t, err)

	require.NoError(t, r.Toggle(task.ID))
	done, total := r.Counts()
	assert.Equal(t, 1, done)
	assert.Equal(t, 1, total)

	require.NoError(t, r.Edit(task.ID, "Send email"))
	got, ok := r.Get(task.ID)
	require.True(t, ok)
	assert.Equal(t, "Send email", got.Text)

	require.NoError(t, r.SetCategory(task.ID, CategoryPersonal))
	assert.Error(t, r.SetCategory(task.ID, "nope"))

	require.NoError(t, r.Delete(task.ID))
	assert.Error(t, r.Toggle(task.ID))
}

func TestClearCompleted(t *testing.T) {
	r := newTestRepo(t)
	a, _ := r.Add("done one", CategoryWork)
	b, _ := r.Add("done two", CategoryWork)
	_, err := r.Add("keep me", CategoryPersonal)
	require.NoError(t, err)
	require.NoError(t, r.Toggle(a.ID))
	require.NoError(t, r.Toggle(b.ID))

	assert.Equal(t, 2, r.ClearCompleted())
	_, total := r.Counts()
	assert.Equal(t, 1, total)
	assert.Equal(t, 0, r.ClearCompleted())
}

func TestTasksPersistAcrossReload(t *testing.T) {
	st := storage.NewMemoryStore()
	r := NewRepo(st, time.Now)
	task, err := r.Add("Persisted", CategoryWork)
	require.NoError(t, err)

	reloaded := NewRepo(st, time.Now)
	got, ok := reloaded.Get(task.ID)
	require.True(t, ok)
	assert.Equal(t, task.Text, got.Text)
}
