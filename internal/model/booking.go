package model

import "time"

// Booking links a user to the hotel room they reserved.  A user is
// expected to hold at most one booking; lookups always resolve it by
// user ID.
//
// Fields:
//	ID        – primary key identifier.
//	UserID    – owner of the booking.
//	RoomID    – room currently assigned to the booking.
//	CreatedAt – creation timestamp.
//	UpdatedAt – last update timestamp, refreshed on room changes.
//	Room      – the assigned room, populated only by joined reads.
type Booking struct {
	ID        uint64    `db:"id" json:"id"`                // bookings.id
	UserID    uint64    `db:"user_id" json:"userId"`       // bookings.user_id
	RoomID    uint64    `db:"room_id" json:"roomId"`       // bookings.room_id
	CreatedAt time.Time `db:"created_at" json:"createdAt"` // bookings.created_at
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"` // bookings.updated_at
	Room      *Room     `db:"-" json:"Room,omitempty"`
}
