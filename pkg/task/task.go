package task

import "time"

// ID uniquely identifies a task within a store.
type ID string

// Priority of a task.
type Priority string

const (
	Low    Priority = "low"
	Medium Priority = "medium"
	High   Priority = "high"
)

// Ordinal maps a priority onto a comparable scale (high=3, medium=2, low=1).
func (p Priority) Ordinal() int {
	switch p {
	case High:
		return 3
	case Medium:
		return 2
	case Low:
		return 1
	}
	return 0
}

// Task is a single to-do item with scheduling and categorization metadata.
type Task struct {
	ID          ID
	Title       string
	Description string
	Completed   bool
	Priority    Priority
	Due         *time.Time
	Tags        []string
	Project     string
	Created     time.Time
	Updated     time.Time
}

// HasTag reports whether the task carries the given tag.
func (t Task) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}
