package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/icmlopes/drivent-booking/internal/model"
	"github.com/icmlopes/drivent-booking/internal/repository"
)

// RoomFinder looks up a room by id.
type RoomFinder interface {
	FindByID(ctx context.Context, id uint64) (*model.Room, error)
}

// RoomAvailabilityChecker decides whether a room can take a booking.
type RoomAvailabilityChecker struct {
	rooms RoomFinder
}

func NewRoomAvailabilityChecker(rooms RoomFinder) *RoomAvailabilityChecker {
	return &RoomAvailabilityChecker{rooms: rooms}
}

// CheckRoomAvailable returns a *NotFoundError for an unknown room and a
// *ForbiddenError for a room with no capacity.  Existence is checked
// before capacity.
func (c *RoomAvailabilityChecker) CheckRoomAvailable(ctx context.Context, roomID uint64) error {
	room, err := c.rooms.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return notFound("room not found")
		}
		return fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return notFound("room not found")
	}
	if room.IsFull() {
		return forbidden("this room is no longer available")
	}
	return nil
}
