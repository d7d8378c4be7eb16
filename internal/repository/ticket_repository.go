package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/icmlopes/drivent-booking/internal/model"
)

// TicketRepo reads tickets together with their ticket type.
type TicketRepo struct {
	db *sqlx.DB
}

// NewTicketRepo constructs a TicketRepo.
func NewTicketRepo(db *sqlx.DB) *TicketRepo { return &TicketRepo{db: db} }

// FindByEnrollmentID returns the ticket of an enrollment with its type
// joined in.  It returns ErrTicketNotFound when the enrollment has no
// ticket.
func (r *TicketRepo) FindByEnrollmentID(ctx context.Context, enrollmentID uint64) (*model.Ticket, error) {
	const q = `SELECT t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
	                  tt.id AS 'ticket_type.id', tt.name AS 'ticket_type.name',
	                  tt.price AS 'ticket_type.price', tt.is_remote AS 'ticket_type.is_remote',
	                  tt.includes_hotel AS 'ticket_type.includes_hotel',
	                  tt.created_at AS 'ticket_type.created_at', tt.updated_at AS 'ticket_type.updated_at'
	           FROM tickets t
	           JOIN ticket_types tt ON tt.id = t.ticket_type_id
	           WHERE t.enrollment_id = ?
	           LIMIT 1`
	var t model.Ticket
	if err := r.db.GetContext(ctx, &t, q, enrollmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &t, nil
}
