package usecase

import (
	"context"
	"math"
	"time"

	"rentease/internal/domain/entity"
	"rentease/internal/domain/repository"
	"rentease/pkg/errors"
)

type BookingUseCase struct {
	bookingRepo repository.BookingRepository
	listingRepo repository.ListingRepository
}

func NewBookingUseCase(bookingRepo repository.BookingRepository, listingRepo repository.ListingRepository) *BookingUseCase {
	return &BookingUseCase{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
	}
}

type CreateBookingInput struct {
	UserID    string
	ItemType  string
	ItemID    string
	StartDate time.Time
	EndDate   time.Time
}

// CreateBooking computes the total from the listing's per-period price and a
// ceiling day count, snapshots the listing into the booking and persists it
// with a pending status. The date range is not validated: equal dates yield a
// zero total and an inverted range a negative one.
func (uc *BookingUseCase) CreateBooking(ctx context.Context, input CreateBookingInput) (*entity.Booking, error) {
	if input.UserID == "" {
		return nil, errors.Unauthorized("Please log in to book this listing", nil)
	}

	var (
		itemName  string
		itemImage string
		price     int64
	)

	switch input.ItemType {
	case entity.ItemTypeApartment:
		apartment, err := uc.listingRepo.GetApartment(ctx, input.ItemID)
		if err != nil {
			return nil, err
		}
		itemName, itemImage, price = apartment.Name, apartment.Image, apartment.Price
	case entity.ItemTypeCar, entity.ItemTypeBike:
		vehicle, err := uc.listingRepo.GetVehicle(ctx, input.ItemID)
		if err != nil {
			return nil, err
		}
		itemName, itemImage, price = vehicle.Name, vehicle.Image, vehicle.Price
	default:
		return nil, errors.Validation("itemType must be apartment, car or bike", nil)
	}

	totalDays := int64(math.Ceil(input.EndDate.Sub(input.StartDate).Hours() / 24))
	totalPrice := totalDays * price

	booking := &entity.Booking{
		UserID:     input.UserID,
		ItemID:     input.ItemID,
		ItemType:   input.ItemType,
		ItemName:   itemName,
		ItemImage:  itemImage,
		StartDate:  input.StartDate.Format(time.RFC3339),
		EndDate:    input.EndDate.Format(time.RFC3339),
		TotalPrice: totalPrice,
		Status:     entity.BookingStatusPending,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := uc.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// ListBookings returns the full history across all users.
func (uc *BookingUseCase) ListBookings(ctx context.Context) ([]*entity.Booking, error) {
	return uc.bookingRepo.List(ctx)
}

func (uc *BookingUseCase) DeleteBooking(ctx context.Context, id string) error {
	return uc.bookingRepo.Delete(ctx, id)
}
