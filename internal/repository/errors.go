// Package repository is the persistence gateway of the booking service.
// Repositories execute typed queries against MySQL and own no business
// rules.  Lookups that find nothing return the sentinel errors below so
// higher layers can tell an absent row from an infrastructure failure.
package repository

import "errors"

var (
	// ErrBookingNotFound is returned when a user has no booking.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrRoomNotFound is returned when a room lookup fails.
	ErrRoomNotFound = errors.New("room not found")
	// ErrRoomFull is returned by the write path when the locked room row
	// reports zero capacity.
	ErrRoomFull = errors.New("room is full")
	// ErrEnrollmentNotFound is returned when a user has not enrolled.
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	// ErrTicketNotFound is returned when an enrollment has no ticket.
	ErrTicketNotFound = errors.New("ticket not found")
	// ErrUserNotFound is returned when a user lookup fails.
	ErrUserNotFound = errors.New("user not found")
	// ErrSessionNotFound is returned when a token has no live session.
	ErrSessionNotFound = errors.New("session not found")
)

// ErrEmailExists is returned when an email is already registered.
var ErrEmailExists = errors.New("email already exists")
