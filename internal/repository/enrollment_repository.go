package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/icmlopes/drivent-booking/internal/model"
)

// EnrollmentRepo reads event enrollments.
type EnrollmentRepo struct {
	db *sqlx.DB
}

// NewEnrollmentRepo constructs an EnrollmentRepo.
func NewEnrollmentRepo(db *sqlx.DB) *EnrollmentRepo { return &EnrollmentRepo{db: db} }

// FindByUserID returns the enrollment of a user or ErrEnrollmentNotFound.
func (r *EnrollmentRepo) FindByUserID(ctx context.Context, userID uint64) (*model.Enrollment, error) {
	const q = `SELECT id, user_id, name, cpf, birthday, phone, created_at, updated_at
	           FROM enrollments WHERE user_id = ? LIMIT 1`
	var e model.Enrollment
	if err := r.db.GetContext(ctx, &e, q, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	return &e, nil
}
