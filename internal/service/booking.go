package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/icmlopes/drivent-booking/internal/model"
	"github.com/icmlopes/drivent-booking/internal/queue"
	"github.com/icmlopes/drivent-booking/internal/repository"
)

// BookingStore is the persistence contract of the booking service.
// Create and UpdateRoom re-check the room under a row lock and may
// return repository.ErrRoomNotFound or repository.ErrRoomFull.
type BookingStore interface {
	FindByUserID(ctx context.Context, userID uint64) (*model.Booking, error)
	Create(ctx context.Context, userID, roomID uint64) (*model.Booking, error)
	UpdateRoom(ctx context.Context, bookingID, roomID uint64) (*model.Booking, error)
}

// EventPublisher emits booking events.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.BookingEvent) error
}

// BookingService implements get, create and change-room for hotel
// bookings.  Each operation is a fail-fast chain: the first rule that
// fails is returned unchanged and nothing is written.
type BookingService struct {
	bookings    BookingStore
	eligibility *EligibilityChecker
	rooms       *RoomAvailabilityChecker
	events      EventPublisher
	log         *zap.Logger
	tracer      trace.Tracer
}

// NewBookingService wires the service.  events may be nil, in which case
// no events are published.
func NewBookingService(bookings BookingStore, eligibility *EligibilityChecker, rooms *RoomAvailabilityChecker, events EventPublisher, log *zap.Logger) *BookingService {
	if bookings == nil || eligibility == nil || rooms == nil {
		panic("nil dependency passed to NewBookingService")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &BookingService{
		bookings:    bookings,
		eligibility: eligibility,
		rooms:       rooms,
		events:      events,
		log:         log,
		tracer:      otel.Tracer("github.com/icmlopes/drivent-booking/internal/service"),
	}
}

// GetBooking returns the user's booking with its room.  Reads are not
// gated by ticket eligibility.
func (s *BookingService) GetBooking(ctx context.Context, userID uint64) (_ *model.Booking, err error) {
	ctx, span := s.tracer.Start(ctx, "BookingService.GetBooking", trace.WithAttributes(attribute.Int64("user.id", int64(userID))))
	defer func() { endSpan(span, err) }()

	b, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, notFound("booking not found")
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return b, nil
}

// CreateBooking books roomID for userID.  The user must be eligible and
// the room must exist with non-zero capacity.  Capacity is not consumed,
// so the same user may book the same room again.
func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID uint64) (_ *model.Booking, err error) {
	ctx, span := s.tracer.Start(ctx, "BookingService.CreateBooking", trace.WithAttributes(
		attribute.Int64("user.id", int64(userID)),
		attribute.Int64("room.id", int64(roomID)),
	))
	defer func() { endSpan(span, err) }()

	if err := s.eligibility.CheckEligibility(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.rooms.CheckRoomAvailable(ctx, roomID); err != nil {
		return nil, err
	}

	b, err := s.bookings.Create(ctx, userID, roomID)
	if err != nil {
		return nil, mapWriteError(err, "create booking")
	}
	s.log.Info("booking created",
		zap.Uint64("booking_id", b.ID), zap.Uint64("user_id", userID), zap.Uint64("room_id", roomID))
	s.publish(ctx, queue.NewBookingEvent(queue.EventBookingCreated, b.ID, userID, roomID, 0))
	return b, nil
}

// UpdateBookingRoom moves the user's booking to roomID.  bookingID must
// be the id of the user's own booking; any other id is reported as not
// found so that other users' bookings cannot be probed.
func (s *BookingService) UpdateBookingRoom(ctx context.Context, userID, bookingID, roomID uint64) (_ *model.Booking, err error) {
	ctx, span := s.tracer.Start(ctx, "BookingService.UpdateBookingRoom", trace.WithAttributes(
		attribute.Int64("user.id", int64(userID)),
		attribute.Int64("booking.id", int64(bookingID)),
		attribute.Int64("room.id", int64(roomID)),
	))
	defer func() { endSpan(span, err) }()

	if err := s.eligibility.CheckEligibility(ctx, userID); err != nil {
		return nil, err
	}
	current, err := s.GetBooking(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current.ID != bookingID {
		return nil, notFound("booking not found")
	}
	if err := s.rooms.CheckRoomAvailable(ctx, roomID); err != nil {
		return nil, err
	}

	b, err := s.bookings.UpdateRoom(ctx, bookingID, roomID)
	if err != nil {
		return nil, mapWriteError(err, "update booking")
	}
	s.log.Info("booking room changed",
		zap.Uint64("booking_id", b.ID), zap.Uint64("user_id", userID),
		zap.Uint64("room_id", roomID), zap.Uint64("previous_room_id", current.RoomID))
	s.publish(ctx, queue.NewBookingEvent(queue.EventBookingRoomChanged, b.ID, userID, roomID, current.RoomID))
	return b, nil
}

// publish never fails the caller; the booking is already committed.
func (s *BookingService) publish(ctx context.Context, ev queue.BookingEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.Warn("publish booking event failed",
			zap.String("type", ev.Type), zap.Uint64("booking_id", ev.BookingID), zap.Error(err))
	}
}

// mapWriteError translates the room re-check done under lock into the
// same errors the availability checker returns.
func mapWriteError(err error, op string) error {
	switch {
	case errors.Is(err, repository.ErrRoomNotFound):
		return notFound("room not found")
	case errors.Is(err, repository.ErrRoomFull):
		return forbidden("this room is no longer available")
	case errors.Is(err, repository.ErrBookingNotFound):
		return notFound("booking not found")
	}
	return fmt.Errorf("%s: %w", op, err)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
