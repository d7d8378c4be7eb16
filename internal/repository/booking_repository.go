package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/icmlopes/drivent-booking/internal/model"
)

// BookingRepo provides the reads and writes behind the booking
// endpoints.  Writes run in a transaction that locks the target room row
// so the capacity seen by the write is the capacity at commit time.
type BookingRepo struct {
	db *sqlx.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sqlx.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, user_id, room_id, created_at, updated_at`

// bookingRoomRow is the scan target of the booking/room join.
type bookingRoomRow struct {
	model.Booking
	JoinedRoom model.Room `db:"room"`
}

// FindByUserID returns the user's booking joined with its room.  When a
// user somehow holds more than one booking the newest wins.  It returns
// ErrBookingNotFound when the user has none.
func (r *BookingRepo) FindByUserID(ctx context.Context, userID uint64) (*model.Booking, error) {
	const q = `SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
	                  r.id AS 'room.id', r.name AS 'room.name', r.capacity AS 'room.capacity',
	                  r.hotel_id AS 'room.hotel_id', r.created_at AS 'room.created_at',
	                  r.updated_at AS 'room.updated_at'
	           FROM bookings b
	           JOIN rooms r ON r.id = b.room_id
	           WHERE b.user_id = ?
	           ORDER BY b.id DESC
	           LIMIT 1`
	var row bookingRoomRow
	if err := r.db.GetContext(ctx, &row, q, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	b := row.Booking
	room := row.JoinedRoom
	b.Room = &room
	return &b, nil
}

// Create inserts a booking for userID in roomID.  The room is re-read
// under a row lock; ErrRoomNotFound or ErrRoomFull is returned if it
// disappeared or filled up since the caller last checked.
func (r *BookingRepo) Create(ctx context.Context, userID, roomID uint64) (*model.Booking, error) {
	var b model.Booking
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := lockOpenRoom(ctx, tx, roomID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `INSERT INTO bookings (user_id, room_id) VALUES (?, ?)`, userID, roomID)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		return tx.GetContext(ctx, &b, `SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id)
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateRoom moves a booking to roomID and refreshes updated_at.  The
// same room checks as Create apply.  It returns ErrBookingNotFound when
// the booking row does not exist.
func (r *BookingRepo) UpdateRoom(ctx context.Context, bookingID, roomID uint64) (*model.Booking, error) {
	var b model.Booking
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := lockOpenRoom(ctx, tx, roomID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			`UPDATE bookings SET room_id = ?, updated_at = CURRENT_TIMESTAMP(3) WHERE id = ?`,
			roomID, bookingID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrBookingNotFound
		}
		return tx.GetContext(ctx, &b, `SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, bookingID)
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}
