// Package queue defines the booking events exchanged over RabbitMQ, the
// publisher the booking service uses to emit them and the consumer that
// keeps an audit log of them.
package queue

import (
	"time"

	"github.com/google/uuid"
)

// BookingEventsQueue is the durable queue booking events are routed to.
const BookingEventsQueue = "booking.events"

// Event types.
const (
	EventBookingCreated     = "booking.created"
	EventBookingRoomChanged = "booking.room_changed"
)

// BookingEvent is published after a booking is created or moved to a new
// room.  PreviousRoomID is zero for creations.
type BookingEvent struct {
	EventID        string `json:"event_id"`
	Type           string `json:"type"`
	BookingID      uint64 `json:"booking_id"`
	UserID         uint64 `json:"user_id"`
	RoomID         uint64 `json:"room_id"`
	PreviousRoomID uint64 `json:"previous_room_id,omitempty"`
	OccurredAt     string `json:"occurred_at"`
}

// NewBookingEvent stamps a fresh event id and the current UTC time.
func NewBookingEvent(eventType string, bookingID, userID, roomID, previousRoomID uint64) BookingEvent {
	return BookingEvent{
		EventID:        uuid.NewString(),
		Type:           eventType,
		BookingID:      bookingID,
		UserID:         userID,
		RoomID:         roomID,
		PreviousRoomID: previousRoomID,
		OccurredAt:     time.Now().UTC().Format(time.RFC3339),
	}
}
