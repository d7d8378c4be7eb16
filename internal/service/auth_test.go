package service

import (
	"context"
	"errors"
	"testing"

	"github.com/icmlopes/drivent-booking/internal/model"
	"github.com/icmlopes/drivent-booking/internal/repository"
	"github.com/icmlopes/drivent-booking/internal/utils"
)

type MockUserRepository struct {
	byEmail map[string]*model.User
	nextID  uint64
}

func (m *MockUserRepository) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	if _, ok := m.byEmail[email]; ok {
		return nil, repository.ErrEmailExists
	}
	m.nextID++
	u := &model.User{ID: m.nextID, Email: email, PasswordHash: passwordHash}
	m.byEmail[email] = u
	return u, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

type MockSessionRepository struct {
	tokens map[string]uint64
	err    error
}

func (m *MockSessionRepository) Create(ctx context.Context, userID uint64, token string) error {
	if m.err != nil {
		return m.err
	}
	m.tokens[token] = userID
	return nil
}

func newTestAuthService() (*AuthService, *MockSessionRepository) {
	sessions := &MockSessionRepository{tokens: map[string]uint64{}}
	svc := NewAuthService(
		&MockUserRepository{byEmail: map[string]*model.User{}},
		sessions,
		AuthConfig{JWTSecret: "test-secret", AccessTTLMin: 60, BcryptCost: 4},
		nil,
	)
	return svc, sessions
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()

	u, err := svc.SignUp(ctx, " Ana@Example.com ", "123456")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if u.Email != "ana@example.com" {
		t.Errorf("Email = %q, want normalized", u.Email)
	}
	if u.PasswordHash == "123456" || !utils.VerifyPassword(u.PasswordHash, "123456") {
		t.Error("password was not stored as a bcrypt hash")
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantName string
	}{
		{name: "duplicate email", email: "ana@example.com", password: "123456", wantName: "ConflictError"},
		{name: "invalid email", email: "not-an-email", password: "123456", wantName: "InvalidDataError"},
		{name: "short password", email: "bia@example.com", password: "123", wantName: "InvalidDataError"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(ctx, tt.email, tt.password)
			var app ApplicationError
			if !errors.As(err, &app) || app.Name() != tt.wantName {
				t.Errorf("SignUp() error = %v, want %s", err, tt.wantName)
			}
		})
	}
}

func TestAuthService_SignIn(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newTestAuthService()
	created, err := svc.SignUp(ctx, "ana@example.com", "123456")
	if err != nil {
		t.Fatal(err)
	}

	u, token, err := svc.SignIn(ctx, "ana@example.com", "123456")
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if u.ID != created.ID {
		t.Errorf("user id = %d, want %d", u.ID, created.ID)
	}
	if sessions.tokens[token] != created.ID {
		t.Error("no session stored for issued token")
	}
	id, err := utils.ParseAccessToken("test-secret", token)
	if err != nil || id != created.ID {
		t.Errorf("ParseAccessToken() = %d, %v", id, err)
	}

	for _, creds := range [][2]string{{"ana@example.com", "wrong!"}, {"nobody@example.com", "123456"}} {
		_, _, err := svc.SignIn(ctx, creds[0], creds[1])
		var unauthorized *UnauthorizedError
		if !errors.As(err, &unauthorized) {
			t.Errorf("SignIn(%q) error = %v, want UnauthorizedError", creds[0], err)
		}
	}
}

func TestAuthService_SignInSessionFailure(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newTestAuthService()
	if _, err := svc.SignUp(ctx, "ana@example.com", "123456"); err != nil {
		t.Fatal(err)
	}
	sessions.err = errors.New("db down")
	if _, _, err := svc.SignIn(ctx, "ana@example.com", "123456"); !errors.Is(err, sessions.err) {
		t.Fatalf("SignIn() error = %v, want wrapped session error", err)
	}
}
