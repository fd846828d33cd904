package repository

import (
	"context"

	"rentease/internal/domain/entity"
)

const CollectionBookings = "bookings"

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	List(ctx context.Context) ([]*entity.Booking, error)
	Delete(ctx context.Context, id string) error
}
