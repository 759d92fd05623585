package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitdash/internal/storage"
)

func TestParseMood(t *testing.T) {
	m, err := ParseMood(" Happy ")
	require.NoError(t, err)
	assert.Equal(t, MoodHappy, m)

	_, err = ParseMood("ecstatic")
	assert.Error(t, err)
}

func TestTrackerSetAndReset(t *testing.T) {
	st := storage.NewMemoryStore()
	tr := NewTracker(st)

	_, ok := tr.Current()
	assert.False(t, ok)

	require.NoError(t, tr.Set(MoodNeutral))
	cur, ok := tr.Current()
	require.True(t, ok)
	assert.Equal(t, MoodNeutral, cur)

	// Survives a reload.
	cur, ok = NewTracker(st).Current()
	require.True(t, ok)
	assert.Equal(t, MoodNeutral, cur)

	tr.Reset()
	_, ok = tr.Current()
	assert.False(t, ok)
	_, ok = NewTracker(st).Current()
	assert.False(t, ok)
}

func TestTrackerIgnoresCorruptValue(t *testing.T) {
	st := storage.NewMemoryStore()
	require.NoError(t, st.Save(storage.KeyMood, "confused"))

	_, ok := NewTracker(st).Current()
	assert.False(t, ok)
}
