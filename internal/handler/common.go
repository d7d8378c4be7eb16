package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/icmlopes/drivent-booking/internal/middleware"
	"github.com/icmlopes/drivent-booking/internal/service"
)

var errNoUser = errors.New("invalid user_id in context")

// getUserID returns the user ID that JWTAuth stored in the context.
func getUserID(c echo.Context) (uint64, error) {
	uid, ok := middleware.UserID(c)
	if !ok {
		return 0, errNoUser
	}
	return uid, nil
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// respondError maps service errors to HTTP status codes.  Anything that
// is not an application error is logged to log and reported as 500.
func respondError(c echo.Context, log *zap.Logger, err error) error {
	var (
		nf   *service.NotFoundError
		fb   *service.ForbiddenError
		cf   *service.ConflictError
		un   *service.UnauthorizedError
		inv  *service.InvalidDataError
		app  service.ApplicationError
		code int
	)
	switch {
	case errors.As(err, &nf):
		code = http.StatusNotFound
	case errors.As(err, &fb):
		code = http.StatusForbidden
	case errors.As(err, &cf):
		code = http.StatusConflict
	case errors.As(err, &un):
		code = http.StatusUnauthorized
	case errors.As(err, &inv):
		code = http.StatusBadRequest
	default:
		log.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("route", c.Path()),
			zap.Error(err),
		)
		return c.JSON(http.StatusInternalServerError, errorBody{
			Name:    "InternalServerError",
			Message: "internal server error",
		})
	}
	errors.As(err, &app)
	return c.JSON(code, errorBody{Name: app.Name(), Message: app.Error()})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorBody{Name: "InvalidDataError", Message: msg})
}
