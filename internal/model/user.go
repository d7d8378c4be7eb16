package model

import "time"

// User represents an account as stored in the `users` table.  Handlers
// never serialize it directly; the password hash stays server side.
//
// Fields:
//	ID           – primary key identifier of the user.
//	Email        – unique, lower-cased email address.
//	PasswordHash – bcrypt hashed password.
//	CreatedAt    – timestamp of creation.
//	UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    `db:"id"`            // users.id
	Email        string    `db:"email"`         // users.email
	PasswordHash string    `db:"password_hash"` // users.password_hash
	CreatedAt    time.Time `db:"created_at"`    // users.created_at
	UpdatedAt    time.Time `db:"updated_at"`    // users.updated_at
}

// Session keeps an issued access token alive.  A token whose session row
// is gone is rejected even if its signature is still valid.
type Session struct {
	ID        uint64    `db:"id"`         // sessions.id
	UserID    uint64    `db:"user_id"`    // sessions.user_id
	Token     string    `db:"token"`      // sessions.token
	CreatedAt time.Time `db:"created_at"` // sessions.created_at
	UpdatedAt time.Time `db:"updated_at"` // sessions.updated_at
}
