package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/icmlopes/drivent-booking/internal/model"
)

// SessionRepo persists the sessions that keep access tokens valid.
type SessionRepo struct{ db *sqlx.DB }

func NewSessionRepo(db *sqlx.DB) *SessionRepo { return &SessionRepo{db: db} }

// Create stores a session row for token.
func (r *SessionRepo) Create(ctx context.Context, userID uint64, token string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO sessions (user_id, token) VALUES (?, ?)",
		userID, token)
	return err
}

// FindByToken returns the session holding token or ErrSessionNotFound.
func (r *SessionRepo) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	var s model.Session
	err := r.db.GetContext(ctx, &s,
		"SELECT id, user_id, token, created_at, updated_at FROM sessions WHERE token = ? LIMIT 1",
		token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
