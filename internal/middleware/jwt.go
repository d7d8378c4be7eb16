package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/icmlopes/drivent-booking/internal/model"
	"github.com/icmlopes/drivent-booking/internal/repository"
	"github.com/icmlopes/drivent-booking/internal/utils"
)

// UserIDKey is the echo context key holding the authenticated user's ID
// as a uint64.
const UserIDKey = "user_id"

// SessionFinder looks up the session that keeps a token alive.
type SessionFinder interface {
	FindByToken(ctx context.Context, token string) (*model.Session, error)
}

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and requires a stored session for it.  The session must belong to the
// token's subject.  On success the user ID is stored under UserIDKey.
// Session store failures are logged to log and answered with 500.
func JWTAuth(secret string, sessions SessionFinder, log *zap.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(auth, "Bearer ") {
				return unauthorized(c)
			}
			raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if raw == "" {
				return unauthorized(c)
			}

			uid, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return unauthorized(c)
			}

			sess, err := sessions.FindByToken(c.Request().Context(), raw)
			if err != nil {
				if errors.Is(err, repository.ErrSessionNotFound) {
					return unauthorized(c)
				}
				log.Error("session lookup", zap.Uint64("user_id", uid), zap.Error(err))
				return c.JSON(http.StatusInternalServerError, echo.Map{
					"name":    "InternalServerError",
					"message": "internal server error",
				})
			}
			if sess.UserID != uid {
				return unauthorized(c)
			}

			c.Set(UserIDKey, uid)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"name":    "UnauthorizedError",
		"message": "You must be signed in to continue",
	})
}
