package usecase

import (
	"context"
	"time"

	"rentease/internal/domain/entity"
	"rentease/internal/domain/repository"
	"rentease/pkg/errors"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
}

func NewListingUseCase(listingRepo repository.ListingRepository) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
	}
}

type ApartmentSpecsInput struct {
	Bedrooms  string
	Bathrooms string
	Area      string
	Floor     string
	Furnished bool
	Parking   bool
	Amenities []string
}

type CreateApartmentInput struct {
	Name          string
	Price         int64
	Image         string
	Description   string
	Address       string
	ContactNumber string
	Specs         ApartmentSpecsInput
}

type VehicleSpecsInput struct {
	Transmission string
	Mileage      string
	Seats        string
	FuelType     string
	Engine       string
	Type         string
}

type CreateVehicleInput struct {
	Name          string
	Price         int64
	Image         string
	Description   string
	Type          string
	ContactNumber string
	Specs         VehicleSpecsInput
	Problems      string
	IsRegistered  bool
	ExtraFittings []string
}

func (uc *ListingUseCase) ListApartments(ctx context.Context) ([]*entity.Apartment, error) {
	return uc.listingRepo.ListApartments(ctx)
}

func (uc *ListingUseCase) ListVehicles(ctx context.Context, vehicleType string) ([]*entity.Vehicle, error) {
	if vehicleType != entity.VehicleTypeCar && vehicleType != entity.VehicleTypeBike {
		return nil, errors.Validation("type must be car or bike", nil)
	}

	return uc.listingRepo.ListVehicles(ctx, vehicleType)
}

func (uc *ListingUseCase) GetApartment(ctx context.Context, id string) (*entity.Apartment, error) {
	return uc.listingRepo.GetApartment(ctx, id)
}

func (uc *ListingUseCase) GetVehicle(ctx context.Context, id string) (*entity.Vehicle, error) {
	return uc.listingRepo.GetVehicle(ctx, id)
}

func (uc *ListingUseCase) CreateApartment(ctx context.Context, input CreateApartmentInput) (*entity.Apartment, error) {
	if err := validateCommonListingFields(input.Name, input.Price, input.Image, input.ContactNumber); err != nil {
		return nil, err
	}
	if input.Address == "" {
		return nil, errors.Validation("address is required for apartments", nil)
	}
	if input.Specs.Area == "" {
		return nil, errors.Validation("area is required for apartments", nil)
	}

	apartment := &entity.Apartment{
		Name:        input.Name,
		Price:       input.Price,
		Image:       input.Image,
		Description: input.Description,
		Address:     input.Address,
		Specs: entity.ApartmentSpecs{
			Bedrooms:  input.Specs.Bedrooms,
			Bathrooms: input.Specs.Bathrooms,
			Area:      input.Specs.Area,
			Floor:     input.Specs.Floor,
			Furnished: input.Specs.Furnished,
			Parking:   input.Specs.Parking,
			Amenities: input.Specs.Amenities,
		},
		ContactNumber: input.ContactNumber,
		CreatedAt:     time.Now(),
	}
	apartment.Specs.FillDefaults()

	if err := uc.listingRepo.CreateApartment(ctx, apartment); err != nil {
		return nil, err
	}

	return apartment, nil
}

func (uc *ListingUseCase) CreateVehicle(ctx context.Context, input CreateVehicleInput) (*entity.Vehicle, error) {
	if err := validateCommonListingFields(input.Name, input.Price, input.Image, input.ContactNumber); err != nil {
		return nil, err
	}
	if input.Type != entity.VehicleTypeCar && input.Type != entity.VehicleTypeBike {
		return nil, errors.Validation("type must be car or bike", nil)
	}
	if input.Specs.Engine == "" {
		return nil, errors.Validation("engine is required for vehicles", nil)
	}
	if input.Specs.Mileage == "" {
		return nil, errors.Validation("mileage is required for vehicles", nil)
	}

	vehicle := &entity.Vehicle{
		Name:        input.Name,
		Price:       input.Price,
		Image:       input.Image,
		Description: input.Description,
		Type:        input.Type,
		Specs: entity.VehicleSpecs{
			Transmission: input.Specs.Transmission,
			Mileage:      input.Specs.Mileage,
			Seats:        input.Specs.Seats,
			FuelType:     input.Specs.FuelType,
			Engine:       input.Specs.Engine,
			Type:         input.Specs.Type,
		},
		Problems:      input.Problems,
		IsRegistered:  input.IsRegistered,
		ExtraFittings: input.ExtraFittings,
		ContactNumber: input.ContactNumber,
		CreatedAt:     time.Now(),
	}
	vehicle.Specs.FillDefaults()

	if err := uc.listingRepo.CreateVehicle(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

func (uc *ListingUseCase) DeleteListing(ctx context.Context, collection, id string) error {
	if collection != repository.CollectionApartments && collection != repository.CollectionVehicles {
		return errors.Validation("collection must be apartments or vehicles", nil)
	}

	return uc.listingRepo.Delete(ctx, collection, id)
}

type ModeratorOverview struct {
	Vehicles   []*entity.Vehicle   `json:"vehicles"`
	Apartments []*entity.Apartment `json:"apartments"`
}

// Overview loads every listing across both collections for the moderation view.
func (uc *ListingUseCase) Overview(ctx context.Context) (*ModeratorOverview, error) {
	vehicles, err := uc.listingRepo.ListAllVehicles(ctx)
	if err != nil {
		return nil, err
	}

	apartments, err := uc.listingRepo.ListApartments(ctx)
	if err != nil {
		return nil, err
	}

	return &ModeratorOverview{
		Vehicles:   vehicles,
		Apartments: apartments,
	}, nil
}

func validateCommonListingFields(name string, price int64, image, contactNumber string) error {
	if name == "" {
		return errors.Validation("name is required", nil)
	}
	if price <= 0 {
		return errors.Validation("price must be a positive number", nil)
	}
	if image == "" {
		return errors.Validation("image is required", nil)
	}
	if contactNumber == "" {
		return errors.Validation("contactNumber is required", nil)
	}
	return nil
}
