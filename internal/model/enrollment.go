package model

import "time"

// Enrollment is a user's registration for the event.  Booking logic only
// cares whether one exists; the personal fields are carried for
// completeness of the row.
type Enrollment struct {
	ID        uint64    `db:"id"`         // enrollments.id
	UserID    uint64    `db:"user_id"`    // enrollments.user_id
	Name      string    `db:"name"`       // enrollments.name
	CPF       string    `db:"cpf"`        // enrollments.cpf
	Birthday  time.Time `db:"birthday"`   // enrollments.birthday
	Phone     string    `db:"phone"`      // enrollments.phone
	CreatedAt time.Time `db:"created_at"` // enrollments.created_at
	UpdatedAt time.Time `db:"updated_at"` // enrollments.updated_at
}
