package habit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitdash/internal/storage"
)

func TestNewRepoStartsWithDefaults(t *testing.T) {
	r := NewRepo(storage.NewMemoryStore())

	habits := r.List()
	require.Len(t, habits, 3)
	done, total := r.Counts()
	assert.Equal(t, 0, done)
	assert.Equal(t, 3, total)
}

func TestCounterHabitDoneAtTarget(t *testing.T) {
	r := NewRepo(storage.NewMemoryStore())

	for i := 0; i < 8; i++ {
		require.NoError(t, r.Increment("water"))
	}
	w, ok := r.Get("water")
	require.True(t, ok)
	assert.True(t, w.Done())

	done, _ := r.Counts()
	assert.Equal(t, 1, done)
}

func TestDecrementClampsAtZero(t *testing.T) {
	r := NewRepo(storage.NewMemoryStore())

	require.NoError(t, r.Decrement("water"))
	w, _ := r.Get("water")
	assert.Equal(t, 0, w.Current)
}

func TestToggleRejectsCounter(t *testing.T) {
	r := NewRepo(storage.NewMemoryStore())
	assert.Error(t, r.Toggle("water"))
	assert.Error(t, r.Increment("exercise"))
}

func TestAddDeleteCustomHabit(t *testing.T) {
	st := storage.NewMemoryStore()
	r := NewRepo(st)

	h := r.Add("Meditate", "10 min", "")
	assert.True(t, h.Custom)
	assert.Equal(t, "star", h.Icon)
	assert.NotEmpty(t, h.ID)

	require.NoError(t, r.Toggle(h.ID))
	done, total := r.Counts()
	assert.Equal(t, 1, done)
	assert.Equal(t, 4, total)

	require.NoError(t, r.Delete(h.ID))
	_, total = r.Counts()
	assert.Equal(t, 3, total)

	assert.Error(t, r.Delete(h.ID))
}

func TestResetDailyClearsCompletionKeepsList(t *testing.T) {
	st := storage.NewMemoryStore()
	r := NewRepo(st)

	require.NoError(t, r.Toggle("exercise"))
	require.NoError(t, r.Increment("water"))
	r.ResetDaily()

	done, total := r.Counts()
	assert.Equal(t, 0, done)
	assert.Equal(t, 3, total)
	w, _ := r.Get("water")
	assert.Equal(t, 0, w.Current)

	// Reset state survives a reload.
	reloaded := NewRepo(st)
	done, _ = reloaded.Counts()
	assert.Equal(t, 0, done)
}
