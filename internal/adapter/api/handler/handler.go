package handler

import (
	"rentease/internal/usecase"
)

var (
	listingHandler *ListingHandler
	bookingHandler *BookingHandler
)

func Setup(
	listingUseCase *usecase.ListingUseCase,
	bookingUseCase *usecase.BookingUseCase,
) {
	listingHandler = NewListingHandler(listingUseCase)
	bookingHandler = NewBookingHandler(bookingUseCase)
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetBookingHandler() *BookingHandler {
	return bookingHandler
}
