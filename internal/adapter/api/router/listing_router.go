package router

import (
	"github.com/labstack/echo/v4"

	"rentease/internal/adapter/api/handler"
	"rentease/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	listingHandler := handler.GetListingHandler()

	// Public browse routes
	e.GET("/v1/apartments", listingHandler.ListApartments)
	e.GET("/v1/apartments/:id", listingHandler.GetApartment)
	e.GET("/v1/vehicles", listingHandler.ListVehicles)
	e.GET("/v1/vehicles/:id", listingHandler.GetVehicle)

	e.POST("/v1/listings", listingHandler.CreateListing, authMiddleware.Authenticate)

	// Moderation routes
	moderator := e.Group("/v1/moderator")
	moderator.Use(authMiddleware.Authenticate)
	moderator.GET("/overview", listingHandler.ModeratorOverview)
	moderator.DELETE("/listings/:collection/:id", listingHandler.DeleteListing)
}
