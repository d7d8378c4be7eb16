package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/icmlopes/drivent-booking/internal/model"
)

// BookingService is what the booking routes need from the service layer.
type BookingService interface {
	GetBooking(ctx context.Context, userID uint64) (*model.Booking, error)
	CreateBooking(ctx context.Context, userID, roomID uint64) (*model.Booking, error)
	UpdateBookingRoom(ctx context.Context, userID, bookingID, roomID uint64) (*model.Booking, error)
}

// BookingHandler serves /booking.  Every route runs behind JWTAuth.
type BookingHandler struct {
	svc BookingService
	log *zap.Logger
}

func NewBookingHandler(svc BookingService, log *zap.Logger) *BookingHandler {
	if svc == nil {
		panic("nil service passed to NewBookingHandler")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &BookingHandler{svc: svc, log: log}
}

type roomReq struct {
	RoomID uint64 `json:"roomId"`
}

type bookingIDResp struct {
	BookingID uint64 `json:"bookingId"`
}

// GetBooking handles GET /booking: the caller's booking with its room.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, errorBody{Name: "UnauthorizedError", Message: "You must be signed in to continue"})
	}
	b, err := h.svc.GetBooking(c.Request().Context(), uid)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, b)
}

// PostBooking handles POST /booking {roomId}.  A missing roomId is treated
// as room 0, which never exists.
func (h *BookingHandler) PostBooking(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, errorBody{Name: "UnauthorizedError", Message: "You must be signed in to continue"})
	}
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	b, err := h.svc.CreateBooking(c.Request().Context(), uid, req.RoomID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, bookingIDResp{BookingID: b.ID})
}

// PutBooking handles PUT /booking/:bookingId {roomId}.
func (h *BookingHandler) PutBooking(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, errorBody{Name: "UnauthorizedError", Message: "You must be signed in to continue"})
	}
	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid bookingId")
	}
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	b, err := h.svc.UpdateBookingRoom(c.Request().Context(), uid, bookingID, req.RoomID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, bookingIDResp{BookingID: b.ID})
}
