package router

import (
	"github.com/labstack/echo/v4"

	"rentease/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupListingRouter(e, authMiddleware)
	SetupBookingRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
