package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/masrafi-000/mytaskmanager/internal/server/core/domain"
	"github.com/masrafi-000/mytaskmanager/internal/server/core/ports"
)

type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	now      func() time.Time
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository) *AuthService {
	return &AuthService{users: users, sessions: sessions, now: time.Now}
}

func (s *AuthService) SignUp(ctx context.Context, in domain.SignUpInput) (domain.User, string, error) {
	if in.Password != in.RepeatPassword {
		return domain.User{}, "", domain.ErrPasswordMismatch
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return domain.User{}, "", domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, "", err
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, "", err
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

// UserFromToken resolves a bearer token to the user it was issued for.
func (s *AuthService) UserFromToken(ctx context.Context, token string) (domain.User, error) {
	userID, err := s.sessions.GetUserID(ctx, token)
	if err != nil {
		return domain.User{}, err
	}
	return s.users.GetByID(ctx, userID)
}

// issueToken mints an opaque token and persists it so it survives restarts.
func (s *AuthService) issueToken(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.sessions.Create(ctx, token, userID); err != nil {
		return "", err
	}
	return token, nil
}
