package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rentease/internal/domain/entity"
)

type mockListingRepository struct {
	mock.Mock
}

func (m *mockListingRepository) ListApartments(ctx context.Context) ([]*entity.Apartment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Apartment), args.Error(1)
}

func (m *mockListingRepository) ListVehicles(ctx context.Context, vehicleType string) ([]*entity.Vehicle, error) {
	args := m.Called(ctx, vehicleType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Vehicle), args.Error(1)
}

func (m *mockListingRepository) ListAllVehicles(ctx context.Context) ([]*entity.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Vehicle), args.Error(1)
}

func (m *mockListingRepository) GetApartment(ctx context.Context, id string) (*entity.Apartment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Apartment), args.Error(1)
}

func (m *mockListingRepository) GetVehicle(ctx context.Context, id string) (*entity.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Vehicle), args.Error(1)
}

func (m *mockListingRepository) CreateApartment(ctx context.Context, apartment *entity.Apartment) error {
	args := m.Called(ctx, apartment)
	return args.Error(0)
}

func (m *mockListingRepository) CreateVehicle(ctx context.Context, vehicle *entity.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *mockListingRepository) Delete(ctx context.Context, collection, id string) error {
	args := m.Called(ctx, collection, id)
	return args.Error(0)
}

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *mockBookingRepository) List(ctx context.Context) ([]*entity.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *mockBookingRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
