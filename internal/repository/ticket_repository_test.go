package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"github.com/icmlopes/drivent-booking/internal/model"
)

func TestTicketRepo_FindByEnrollmentID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTicketRepo(db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "enrollment_id", "ticket_type_id", "status", "created_at", "updated_at",
		"ticket_type.id", "ticket_type.name", "ticket_type.price", "ticket_type.is_remote",
		"ticket_type.includes_hotel", "ticket_type.created_at", "ticket_type.updated_at",
	}).AddRow(3, 2, 4, "PAID", now, now, 4, "Presencial + Hotel", 600, false, true, now, now)
	mock.ExpectQuery(`FROM tickets t JOIN ticket_types tt`).WithArgs(2).WillReturnRows(rows)

	tk, err := repo.FindByEnrollmentID(context.Background(), 2)
	if err != nil {
		t.Fatalf("FindByEnrollmentID() error = %v", err)
	}
	if tk.Status != model.TicketStatusPaid {
		t.Errorf("Status = %q, want PAID", tk.Status)
	}
	if tk.TicketType.IsRemote || !tk.TicketType.IncludesHotel || tk.TicketType.ID != 4 {
		t.Errorf("unexpected ticket type %+v", tk.TicketType)
	}
}

func TestTicketRepo_FindByEnrollmentID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTicketRepo(db)
	mock.ExpectQuery(`FROM tickets t`).WithArgs(2).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.FindByEnrollmentID(context.Background(), 2); !errors.Is(err, ErrTicketNotFound) {
		t.Fatalf("FindByEnrollmentID() error = %v, want ErrTicketNotFound", err)
	}
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)
	mock.ExpectExec(`INSERT INTO users`).WithArgs("ana@example.com", "hash").
		WillReturnError(&mysqlError1062)

	if _, err := repo.Create(context.Background(), " Ana@Example.com ", "hash"); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("Create() error = %v, want ErrEmailExists", err)
	}
}

var mysqlError1062 = mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'ana@example.com' for key 'users.email'"}
