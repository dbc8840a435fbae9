package domain

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Todo struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Priority    Priority
	DueDate     time.Time
	Project     string
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TodoInput struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     time.Time
	Project     string
	Tags        []string
}
