package service

import (
	"context"
	"errors"
	"testing"

	"github.com/icmlopes/drivent-booking/internal/model"
)

func TestEligibilityChecker_CheckEligibility(t *testing.T) {
	tests := []struct {
		name   string
		userID uint64
		setup  func(f *fixture)
		check  func(err error) bool
	}{
		{
			name:   "eligible user",
			userID: eligibleUser,
			check:  func(err error) bool { return err == nil },
		},
		{
			name:   "no enrollment",
			userID: 99,
			check:  isNotFound,
		},
		{
			name:   "no ticket",
			userID: eligibleUser,
			setup:  func(f *fixture) { delete(f.tickets.byEnrollment, 10) },
			check:  isForbidden,
		},
		{
			name:   "reserved ticket",
			userID: eligibleUser,
			setup:  func(f *fixture) { f.setTicket(func(t *model.Ticket) { t.Status = model.TicketStatusReserved }) },
			check:  isForbidden,
		},
		{
			name:   "remote ticket",
			userID: eligibleUser,
			setup:  func(f *fixture) { f.setTicket(func(t *model.Ticket) { t.TicketType.IsRemote = true }) },
			check:  isForbidden,
		},
		{
			name:   "ticket without hotel",
			userID: eligibleUser,
			setup:  func(f *fixture) { f.setTicket(func(t *model.Ticket) { t.TicketType.IncludesHotel = false }) },
			check:  isForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if tt.setup != nil {
				tt.setup(f)
			}
			checker := NewEligibilityChecker(f.enrollments, f.tickets)
			err := checker.CheckEligibility(context.Background(), tt.userID)
			if !tt.check(err) {
				t.Errorf("CheckEligibility() error = %v", err)
			}
		})
	}
}

func TestEligibilityChecker_InfrastructureError(t *testing.T) {
	f := newFixture()
	boom := errors.New("connection reset")
	f.enrollments.err = boom
	err := NewEligibilityChecker(f.enrollments, f.tickets).CheckEligibility(context.Background(), eligibleUser)
	if !errors.Is(err, boom) {
		t.Fatalf("CheckEligibility() error = %v, want wrapped %v", err, boom)
	}
	var app ApplicationError
	if errors.As(err, &app) {
		t.Errorf("infrastructure error reported as %s", app.Name())
	}
}

func TestRoomAvailabilityChecker_CheckRoomAvailable(t *testing.T) {
	tests := []struct {
		name   string
		roomID uint64
		check  func(err error) bool
	}{
		{name: "open room", roomID: openRoom, check: func(err error) bool { return err == nil }},
		{name: "full room", roomID: fullRoom, check: isForbidden},
		{name: "missing room", roomID: missingRoom, check: isNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			err := NewRoomAvailabilityChecker(f.rooms).CheckRoomAvailable(context.Background(), tt.roomID)
			if !tt.check(err) {
				t.Errorf("CheckRoomAvailable() error = %v", err)
			}
		})
	}
}
