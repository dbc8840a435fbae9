package dto

import "time"

type TodoItem struct {
	ID        string     `json:"_id"`
	Title     string     `json:"title"`
	Desc      string     `json:"desc"`
	Priority  string     `json:"priority"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Project   string     `json:"project,omitempty"`
	Tags      []string   `json:"tags"`
	User      string     `json:"user,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type TodoPayload struct {
	Title    string    `json:"title" binding:"required,max=255"`
	Desc     string    `json:"desc" binding:"omitempty,max=65535"`
	Priority string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate  time.Time `json:"dueDate" binding:"required"`
	Project  string    `json:"project" binding:"omitempty,max=255"`
	Tags     []string  `json:"tags" binding:"omitempty,dive,max=64"`
}

type TodosResponse struct {
	Todos []TodoItem `json:"todos"`
}

type TodoResponse struct {
	Todo TodoItem `json:"todo"`
}
