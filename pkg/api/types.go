package api

import (
	"time"

	"github.com/masrafi-000/mytaskmanager/pkg/task"
)

// BackendTask is the wire representation of a task. It carries no
// completion flag: completion state never round-trips through the backend.
type BackendTask struct {
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

// TaskInput is the client-side shape of a create/update payload.
type TaskInput struct {
	Title       string
	Description string
	Priority    task.Priority
	Due         *time.Time
	Project     string
	Tags        []string
}

// todoPayload is the request body for create and update calls.
type todoPayload struct {
	Title    string    `json:"title"`
	Desc     string    `json:"desc"`
	Priority string    `json:"priority"`
	DueDate  time.Time `json:"dueDate"`
	Project  string    `json:"project,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
}

// toWire maps a TaskInput onto the backend payload. An absent due date
// defaults to now.
func toWire(in TaskInput, now time.Time) todoPayload {
	due := now
	if in.Due != nil {
		due = *in.Due
	}
	return todoPayload{
		Title:    in.Title,
		Desc:     in.Description,
		Priority: string(in.Priority),
		DueDate:  due,
		Project:  in.Project,
		Tags:     in.Tags,
	}
}

// FromWire maps a BackendTask into the in-memory representation. Completed
// is always false: the wire shape has no completion flag, so every fetched
// task is presented as incomplete until toggled locally.
func FromWire(bt BackendTask) task.Task {
	return task.Task{
		ID:          task.ID(bt.ID),
		Title:       bt.Title,
		Description: bt.Desc,
		Completed:   false,
		Priority:    task.Priority(bt.Priority),
		Due:         bt.DueDate,
		Tags:        bt.Tags,
		Project:     bt.Project,
		Created:     bt.CreatedAt,
		Updated:     bt.UpdatedAt,
	}
}

// User is the authenticated user's profile as the backend reports it.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SignUpInput is the sign-up request body.
type SignUpInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	RepeatPassword string `json:"repeatPassword"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is a successful sign-up or login response.
type AuthResult struct {
	User    User   `json:"user"`
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

type todosResponse struct {
	Todos []BackendTask `json:"todos"`
}

type todoResponse struct {
	Todo BackendTask `json:"todo"`
}
