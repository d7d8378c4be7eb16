package model

import "time"

// TicketStatus is the payment state of a ticket.
type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

// TicketType describes what a ticket grants.  Remote tickets never
// include a hotel stay; in-person tickets may or may not.
type TicketType struct {
	ID            uint64    `db:"id"`             // ticket_types.id
	Name          string    `db:"name"`           // ticket_types.name
	Price         uint32    `db:"price"`          // ticket_types.price
	IsRemote      bool      `db:"is_remote"`      // ticket_types.is_remote
	IncludesHotel bool      `db:"includes_hotel"` // ticket_types.includes_hotel
	CreatedAt     time.Time `db:"created_at"`     // ticket_types.created_at
	UpdatedAt     time.Time `db:"updated_at"`     // ticket_types.updated_at
}

// Ticket belongs to an enrollment and carries the payment status used to
// gate bookings.
//
// Fields:
//	ID           – primary key identifier.
//	EnrollmentID – enrollment that owns the ticket.
//	TicketTypeID – reference to the ticket type.
//	Status       – RESERVED until paid, then PAID.
//	TicketType   – the joined ticket type row.
type Ticket struct {
	ID           uint64       `db:"id"`             // tickets.id
	EnrollmentID uint64       `db:"enrollment_id"`  // tickets.enrollment_id
	TicketTypeID uint64       `db:"ticket_type_id"` // tickets.ticket_type_id
	Status       TicketStatus `db:"status"`         // tickets.status
	CreatedAt    time.Time    `db:"created_at"`     // tickets.created_at
	UpdatedAt    time.Time    `db:"updated_at"`     // tickets.updated_at
	TicketType   TicketType   `db:"ticket_type"`
}
