package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"rentease/internal/usecase"
	"rentease/pkg/errors"
	"rentease/pkg/response"
)

type BookingHandler struct {
	bookingUseCase *usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase *usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

type createBookingRequest struct {
	ItemID    string `json:"itemId" validate:"required"`
	ItemType  string `json:"itemType" validate:"required,oneof=apartment car bike"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return response.Error(c, errors.BadRequest("startDate must be an RFC 3339 date-time", err))
	}

	endDate, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		return response.Error(c, errors.BadRequest("endDate must be an RFC 3339 date-time", err))
	}

	booking, err := h.bookingUseCase.CreateBooking(c.Request().Context(), usecase.CreateBookingInput{
		UserID:    uid,
		ItemID:    req.ItemID,
		ItemType:  req.ItemType,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, booking)
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.bookingUseCase.ListBookings(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bookings)
}

func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	id := c.Param("id")

	if err := h.bookingUseCase.DeleteBooking(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Booking deleted successfully",
	})
}
