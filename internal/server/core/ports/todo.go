package ports

import (
	"context"

	"github.com/masrafi-000/mytaskmanager/internal/server/core/domain"
)

type TodoRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Todo, error)
	GetByID(ctx context.Context, id string) (domain.Todo, error)
	Insert(ctx context.Context, todo domain.Todo) error
	Update(ctx context.Context, todo domain.Todo) error
	Delete(ctx context.Context, id string) error
}

type TodoService interface {
	List(ctx context.Context, userID string) ([]domain.Todo, error)
	Create(ctx context.Context, userID string, in domain.TodoInput) (domain.Todo, error)
	Update(ctx context.Context, userID, id string, in domain.TodoInput) (domain.Todo, error)
	Delete(ctx context.Context, userID, id string) error
}
