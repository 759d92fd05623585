package task

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryShopping Category = "shopping"

	// CategoryAll is a filter value only, never stored on a task.
	CategoryAll Category = "all"
)

// DefaultCategory is used when user input is missing or unrecognized.
const DefaultCategory = CategoryPersonal

func (c Category) IsValid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryShopping:
		return true
	default:
		return false
	}
}

// ParseCategory parses user input to a Category, falling back to the default.
func ParseCategory(input string) Category {
	c := Category(strings.TrimSpace(strings.ToLower(input)))
	if c.IsValid() {
		return c
	}
	return DefaultCategory
}

func Categories() []Category {
	return []Category{CategoryWork, CategoryPersonal, CategoryShopping}
}

type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Category  Category  `json:"category"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}
