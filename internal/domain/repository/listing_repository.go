package repository

import (
	"context"

	"rentease/internal/domain/entity"
)

const (
	CollectionApartments = "apartments"
	CollectionVehicles   = "vehicles"
)

type ListingRepository interface {
	ListApartments(ctx context.Context) ([]*entity.Apartment, error)
	ListVehicles(ctx context.Context, vehicleType string) ([]*entity.Vehicle, error)
	ListAllVehicles(ctx context.Context) ([]*entity.Vehicle, error)
	GetApartment(ctx context.Context, id string) (*entity.Apartment, error)
	GetVehicle(ctx context.Context, id string) (*entity.Vehicle, error)
	CreateApartment(ctx context.Context, apartment *entity.Apartment) error
	CreateVehicle(ctx context.Context, vehicle *entity.Vehicle) error
	Delete(ctx context.Context, collection, id string) error
}
