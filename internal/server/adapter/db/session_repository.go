package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/masrafi-000/mytaskmanager/internal/server/core/domain"
	"github.com/masrafi-000/mytaskmanager/internal/server/core/ports"
)

type SessionRepository struct {
	db *sqlx.DB
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, token, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (token, user_id) VALUES (?, ?)`,
		token, userID,
	)
	return err
}

func (r *SessionRepository) GetUserID(ctx context.Context, token string) (string, error) {
	var userID string
	err := r.db.GetContext(ctx, &userID, `SELECT user_id FROM sessions WHERE token = ?`, token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrInvalidToken
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	return err
}
