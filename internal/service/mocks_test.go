package service

import (
	"context"
	"errors"
	"time"

	"github.com/icmlopes/drivent-booking/internal/model"
	"github.com/icmlopes/drivent-booking/internal/queue"
	"github.com/icmlopes/drivent-booking/internal/repository"
)

// MockEnrollmentRepository serves enrollments from a map.
type MockEnrollmentRepository struct {
	byUser map[uint64]*model.Enrollment
	err    error
}

func (m *MockEnrollmentRepository) FindByUserID(ctx context.Context, userID uint64) (*model.Enrollment, error) {
	if m.err != nil {
		return nil, m.err
	}
	e, ok := m.byUser[userID]
	if !ok {
		return nil, repository.ErrEnrollmentNotFound
	}
	return e, nil
}

type MockTicketRepository struct {
	byEnrollment map[uint64]*model.Ticket
}

func (m *MockTicketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID uint64) (*model.Ticket, error) {
	t, ok := m.byEnrollment[enrollmentID]
	if !ok {
		return nil, repository.ErrTicketNotFound
	}
	return t, nil
}

type MockRoomRepository struct {
	rooms map[uint64]*model.Room
}

func (m *MockRoomRepository) FindByID(ctx context.Context, id uint64) (*model.Room, error) {
	r, ok := m.rooms[id]
	if !ok {
		return nil, repository.ErrRoomNotFound
	}
	cp := *r
	return &cp, nil
}

// MockBookingRepository re-checks the room on writes the way the SQL
// repository does under its row lock.
type MockBookingRepository struct {
	rooms       *MockRoomRepository
	bookings    []*model.Booking
	nextID      uint64
	writeErr    error
	createCalls int
	updateCalls int
}

func (m *MockBookingRepository) FindByUserID(ctx context.Context, userID uint64) (*model.Booking, error) {
	for i := len(m.bookings) - 1; i >= 0; i-- {
		b := m.bookings[i]
		if b.UserID != userID {
			continue
		}
		cp := *b
		room, err := m.rooms.FindByID(ctx, b.RoomID)
		if err != nil {
			return nil, err
		}
		cp.Room = room
		return &cp, nil
	}
	return nil, repository.ErrBookingNotFound
}

func (m *MockBookingRepository) checkRoom(roomID uint64) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	r, ok := m.rooms.rooms[roomID]
	if !ok {
		return repository.ErrRoomNotFound
	}
	if r.Capacity == 0 {
		return repository.ErrRoomFull
	}
	return nil
}

func (m *MockBookingRepository) Create(ctx context.Context, userID, roomID uint64) (*model.Booking, error) {
	m.createCalls++
	if err := m.checkRoom(roomID); err != nil {
		return nil, err
	}
	m.nextID++
	now := time.Now().UTC()
	b := &model.Booking{ID: m.nextID, UserID: userID, RoomID: roomID, CreatedAt: now, UpdatedAt: now}
	m.bookings = append(m.bookings, b)
	cp := *b
	return &cp, nil
}

func (m *MockBookingRepository) UpdateRoom(ctx context.Context, bookingID, roomID uint64) (*model.Booking, error) {
	m.updateCalls++
	if err := m.checkRoom(roomID); err != nil {
		return nil, err
	}
	for _, b := range m.bookings {
		if b.ID == bookingID {
			b.RoomID = roomID
			b.UpdatedAt = time.Now().UTC()
			cp := *b
			return &cp, nil
		}
	}
	return nil, repository.ErrBookingNotFound
}

type MockPublisher struct {
	events []queue.BookingEvent
	err    error
}

func (m *MockPublisher) Publish(ctx context.Context, ev queue.BookingEvent) error {
	m.events = append(m.events, ev)
	return m.err
}

// fixture is an eligible user 1 (enrollment 10, paid in-person ticket
// with hotel), room 7 with capacity 3, room 8 full.
type fixture struct {
	enrollments *MockEnrollmentRepository
	tickets     *MockTicketRepository
	rooms       *MockRoomRepository
	bookings    *MockBookingRepository
	publisher   *MockPublisher
	svc         *BookingService
}

const (
	eligibleUser = uint64(1)
	openRoom     = uint64(7)
	fullRoom     = uint64(8)
	otherRoom    = uint64(9)
	missingRoom  = uint64(404)
)

func newFixture() *fixture {
	now := time.Now().UTC()
	f := &fixture{
		enrollments: &MockEnrollmentRepository{byUser: map[uint64]*model.Enrollment{
			eligibleUser: {ID: 10, UserID: eligibleUser},
		}},
		tickets: &MockTicketRepository{byEnrollment: map[uint64]*model.Ticket{
			10: {ID: 20, EnrollmentID: 10, Status: model.TicketStatusPaid, TicketType: model.TicketType{IncludesHotel: true}},
		}},
		rooms: &MockRoomRepository{rooms: map[uint64]*model.Room{
			openRoom:  {ID: openRoom, Name: "Single", Capacity: 3, HotelID: 2, CreatedAt: now, UpdatedAt: now},
			fullRoom:  {ID: fullRoom, Name: "Full", Capacity: 0, HotelID: 2, CreatedAt: now, UpdatedAt: now},
			otherRoom: {ID: otherRoom, Name: "Double", Capacity: 2, HotelID: 2, CreatedAt: now, UpdatedAt: now},
		}},
		publisher: &MockPublisher{},
	}
	f.bookings = &MockBookingRepository{rooms: f.rooms}
	f.svc = NewBookingService(
		f.bookings,
		NewEligibilityChecker(f.enrollments, f.tickets),
		NewRoomAvailabilityChecker(f.rooms),
		f.publisher,
		nil,
	)
	return f
}

func (f *fixture) setTicket(mutate func(t *model.Ticket)) {
	mutate(f.tickets.byEnrollment[10])
}

func isNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func isForbidden(err error) bool {
	var e *ForbiddenError
	return errors.As(err, &e)
}
