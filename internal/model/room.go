package model

import "time"

// Room is a hotel room that can be booked.  A capacity of zero marks the
// room as full; capacity is read when booking but never decremented.
type Room struct {
	ID        uint64    `db:"id" json:"id"`                // rooms.id
	Name      string    `db:"name" json:"name"`            // rooms.name
	Capacity  uint32    `db:"capacity" json:"capacity"`    // rooms.capacity
	HotelID   uint64    `db:"hotel_id" json:"hotelId"`     // rooms.hotel_id
	CreatedAt time.Time `db:"created_at" json:"createdAt"` // rooms.created_at
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"` // rooms.updated_at
}

// IsFull reports whether the room has no capacity left.
func (r Room) IsFull() bool { return r.Capacity == 0 }
