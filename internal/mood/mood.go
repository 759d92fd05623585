package mood

import (
	"fmt"
	"strings"

	"habitdash/internal/storage"
)

type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
)

func (m Mood) IsValid() bool {
	switch m {
	case MoodHappy, MoodNeutral, MoodSad:
		return true
	default:
		return false
	}
}

func (m Mood) Icon() string {
	switch m {
	case MoodHappy:
		return "😊"
	case MoodNeutral:
		return "😐"
	case MoodSad:
		return "😢"
	default:
		return "—"
	}
}

func ParseMood(input string) (Mood, error) {
	m := Mood(strings.TrimSpace(strings.ToLower(input)))
	if !m.IsValid() {
		return "", fmt.Errorf("invalid mood: %q (happy|neutral|sad)", input)
	}
	return m, nil
}

// Tracker remembers today's mood. Cleared on the daily rollover.
type Tracker struct {
	store   storage.Store
	current Mood
}

func NewTracker(store storage.Store) *Tracker {
	t := &Tracker{store: store}
	var m Mood
	if store.Load(storage.KeyMood, &m) && m.IsValid() {
		t.current = m
	}
	return t
}

// Current returns today's mood; the boolean is false when none is set.
func (t *Tracker) Current() (Mood, bool) {
	return t.current, t.current != ""
}

func (t *Tracker) Set(m Mood) error {
	if !m.IsValid() {
		return fmt.Errorf("invalid mood: %q", m)
	}
	t.current = m
	_ = t.store.Save(storage.KeyMood, m)
	return nil
}

func (t *Tracker) Reset() {
	t.current = ""
	_ = t.store.Remove(storage.KeyMood)
}
