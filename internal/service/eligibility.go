// Package service holds the booking business rules.  The two checkers
// answer "may this user book?" and "may this room be booked?"; the
// BookingService composes them with the persistence calls.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/icmlopes/drivent-booking/internal/model"
	"github.com/icmlopes/drivent-booking/internal/repository"
)

// EnrollmentFinder looks up a user's enrollment.
type EnrollmentFinder interface {
	FindByUserID(ctx context.Context, userID uint64) (*model.Enrollment, error)
}

// TicketFinder looks up the ticket, with its type, of an enrollment.
type TicketFinder interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID uint64) (*model.Ticket, error)
}

// EligibilityChecker decides whether a user may hold a hotel booking.
// Every call reads current state; payment status can change at any time.
type EligibilityChecker struct {
	enrollments EnrollmentFinder
	tickets     TicketFinder
}

func NewEligibilityChecker(enrollments EnrollmentFinder, tickets TicketFinder) *EligibilityChecker {
	return &EligibilityChecker{enrollments: enrollments, tickets: tickets}
}

// CheckEligibility returns nil when the user has a paid, in-person ticket
// that includes the hotel.  It returns a *NotFoundError without an
// enrollment and a *ForbiddenError for any ticket that does not qualify.
func (c *EligibilityChecker) CheckEligibility(ctx context.Context, userID uint64) error {
	enrollment, err := c.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			return notFound("enrollment not found")
		}
		return fmt.Errorf("find enrollment: %w", err)
	}

	ticket, err := c.tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return forbidden("user has no ticket")
		}
		return fmt.Errorf("find ticket: %w", err)
	}

	switch {
	case ticket.Status == model.TicketStatusReserved:
		return forbidden("ticket is not paid")
	case ticket.TicketType.IsRemote:
		return forbidden("remote tickets do not include a hotel")
	case !ticket.TicketType.IncludesHotel:
		return forbidden("ticket does not include a hotel")
	}
	return nil
}
