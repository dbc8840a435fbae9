package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/masrafi-000/mytaskmanager/internal/server/core/domain"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) SignUp(ctx context.Context, in domain.SignUpInput) (domain.User, string, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.User), args.String(1), args.Error(2)
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.String(1), args.Error(2)
}

func (m *authServiceMock) UserFromToken(ctx context.Context, token string) (domain.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.User), args.Error(1)
}

type todoServiceMock struct {
	mock.Mock
}

func (m *todoServiceMock) List(ctx context.Context, userID string) ([]domain.Todo, error) {
	args := m.Called(ctx, userID)

	var todos []domain.Todo
	if value := args.Get(0); value != nil {
		todos = value.([]domain.Todo)
	}
	return todos, args.Error(1)
}

func (m *todoServiceMock) Create(ctx context.Context, userID string, in domain.TodoInput) (domain.Todo, error) {
	args := m.Called(ctx, userID, in)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoServiceMock) Update(ctx context.Context, userID, id string, in domain.TodoInput) (domain.Todo, error) {
	args := m.Called(ctx, userID, id, in)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoServiceMock) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
