package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/icmlopes/drivent-booking/internal/model"
)

// RoomRepo reads hotel rooms.  Rooms are managed elsewhere; this
// subsystem never changes them.
type RoomRepo struct {
	db *sqlx.DB
}

// NewRoomRepo constructs a RoomRepo with the given DB handle.
func NewRoomRepo(db *sqlx.DB) *RoomRepo { return &RoomRepo{db: db} }

const roomColumns = `id, name, capacity, hotel_id, created_at, updated_at`

// FindByID retrieves a room by its ID.  It returns ErrRoomNotFound when no
// row matches.
func (r *RoomRepo) FindByID(ctx context.Context, id uint64) (*model.Room, error) {
	var room model.Room
	err := r.db.GetContext(ctx, &room, `SELECT `+roomColumns+` FROM rooms WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// lockOpenRoom locks the room row for the rest of tx and verifies that it
// still exists and has capacity.  Holding the lock until commit keeps a
// concurrent capacity change from slipping between check and write.
func lockOpenRoom(ctx context.Context, tx *sqlx.Tx, roomID uint64) error {
	var capacity uint32
	err := tx.GetContext(ctx, &capacity, `SELECT capacity FROM rooms WHERE id = ? FOR UPDATE`, roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRoomNotFound
		}
		return err
	}
	if capacity == 0 {
		return ErrRoomFull
	}
	return nil
}
