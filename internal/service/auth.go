package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"go.uber.org/zap"

	"github.com/icmlopes/drivent-booking/internal/model"
	"github.com/icmlopes/drivent-booking/internal/repository"
	"github.com/icmlopes/drivent-booking/internal/utils"
)

const minPasswordLen = 6

type UserStore interface {
	Create(ctx context.Context, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type SessionStore interface {
	Create(ctx context.Context, userID uint64, token string) error
}

// AuthConfig carries the token and hashing settings of AuthService.
type AuthConfig struct {
	JWTSecret    string
	AccessTTLMin int
	BcryptCost   int
}

// AuthService registers users and opens sessions for them.
type AuthService struct {
	users    UserStore
	sessions SessionStore
	cfg      AuthConfig
	log      *zap.Logger
}

func NewAuthService(users UserStore, sessions SessionStore, cfg AuthConfig, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{users: users, sessions: sessions, cfg: cfg, log: log}
}

// SignUp creates a user with a bcrypt-hashed password.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, &InvalidDataError{Message: "invalid email"}
	}
	if len(password) < minPasswordLen {
		return nil, &InvalidDataError{Message: fmt.Sprintf("password must have at least %d characters", minPasswordLen)}
	}
	hash, err := utils.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u, err := s.users.Create(ctx, email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, &ConflictError{Message: "there is already a user with given email"}
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.log.Info("user signed up", zap.Uint64("user_id", u.ID))
	return u, nil
}

// SignIn checks the credentials, issues an access token and stores the
// session that keeps it valid.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*model.User, string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", &UnauthorizedError{Message: "email or password are incorrect"}
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return nil, "", &UnauthorizedError{Message: "email or password are incorrect"}
	}
	access, err := utils.NewAccessToken(s.cfg.JWTSecret, u.ID, s.cfg.AccessTTLMin)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	if err := s.sessions.Create(ctx, u.ID, access.Token); err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}
	return u, access.Token, nil
}
