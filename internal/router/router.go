package router

import (
	"github.com/labstack/echo/v4"

	"github.com/icmlopes/drivent-booking/internal/handler"
)

// RegisterRoutes registers routes that do not require authentication.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.Health)
}

// RegisterAuth registers sign-up and sign-in.  Neither requires a token;
// sign-in opens the session that JWTAuth later checks.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.POST("/users", a.SignUp)
	e.POST("/auth/sign-in", a.SignIn)
}

// RegisterBooking mounts /booking behind the given middlewares, which must
// start with JWTAuth so handlers see the user ID.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/booking", mw...)
	g.GET("", b.GetBooking)
	g.POST("", b.PostBooking)
	g.PUT("/:bookingId", b.PutBooking)
}
