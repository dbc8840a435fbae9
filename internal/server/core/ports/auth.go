package ports

import (
	"context"

	"github.com/masrafi-000/mytaskmanager/internal/server/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, token, userID string) error
	GetUserID(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

type AuthService interface {
	SignUp(ctx context.Context, in domain.SignUpInput) (domain.User, string, error)
	Login(ctx context.Context, email, password string) (domain.User, string, error)
	UserFromToken(ctx context.Context, token string) (domain.User, error)
}
