package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/masrafi-000/mytaskmanager/internal/server/core/domain"
	"github.com/masrafi-000/mytaskmanager/internal/server/core/ports"
)

type TodoService struct {
	todos ports.TodoRepository
	now   func() time.Time
}

var _ ports.TodoService = (*TodoService)(nil)

func NewTodoService(todos ports.TodoRepository) *TodoService {
	return &TodoService{todos: todos, now: time.Now}
}

func (s *TodoService) List(ctx context.Context, userID string) ([]domain.Todo, error) {
	return s.todos.ListByUser(ctx, userID)
}

func (s *TodoService) Create(ctx context.Context, userID string, in domain.TodoInput) (domain.Todo, error) {
	now := s.now()
	todo := domain.Todo{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		Project:     in.Project,
		Tags:        in.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.todos.Insert(ctx, todo); err != nil {
		return domain.Todo{}, err
	}
	return todo, nil
}

func (s *TodoService) Update(ctx context.Context, userID, id string, in domain.TodoInput) (domain.Todo, error) {
	todo, err := s.owned(ctx, userID, id)
	if err != nil {
		return domain.Todo{}, err
	}

	todo.Title = in.Title
	todo.Description = in.Description
	todo.Priority = in.Priority
	todo.DueDate = in.DueDate
	todo.Project = in.Project
	todo.Tags = in.Tags
	todo.UpdatedAt = s.now()

	if err := s.todos.Update(ctx, todo); err != nil {
		return domain.Todo{}, err
	}
	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.todos.Delete(ctx, id)
}

// owned fetches a todo and hides other users' todos behind not-found.
func (s *TodoService) owned(ctx context.Context, userID, id string) (domain.Todo, error) {
	todo, err := s.todos.GetByID(ctx, id)
	if err != nil {
		return domain.Todo{}, err
	}
	if todo.UserID != userID {
		return domain.Todo{}, domain.ErrTodoNotFound
	}
	return todo, nil
}
