package handler

import (
	"github.com/labstack/echo/v4"

	"rentease/internal/usecase"
	"rentease/pkg/response"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type apartmentSpecsRequest struct {
	Bedrooms  string   `json:"bedrooms"`
	Bathrooms string   `json:"bathrooms"`
	Area      string   `json:"area"`
	Floor     string   `json:"floor"`
	Furnished bool     `json:"furnished"`
	Parking   bool     `json:"parking"`
	Amenities []string `json:"amenities"`
}

type vehicleSpecsRequest struct {
	Transmission string `json:"transmission"`
	Mileage      string `json:"mileage"`
	Seats        string `json:"seats"`
	FuelType     string `json:"fuelType"`
	Engine       string `json:"engine"`
	Type         string `json:"type"`
}

// createListingRequest mirrors the add-listing form: one submission that is
// either an apartment or a vehicle, selected by kind.
type createListingRequest struct {
	Kind          string                `json:"kind" validate:"required,oneof=apartment car bike"`
	Name          string                `json:"name" validate:"required"`
	Price         int64                 `json:"price" validate:"required,gt=0"`
	Image         string                `json:"image" validate:"required,url"`
	Description   string                `json:"description"`
	ContactNumber string                `json:"contactNumber" validate:"required"`
	Address       string                `json:"address"`
	Specs         vehicleSpecsRequest   `json:"specs"`
	ApartmentSpec apartmentSpecsRequest `json:"apartmentSpecs"`
	Problems      string                `json:"problems"`
	IsRegistered  bool                  `json:"isRegistered"`
	ExtraFittings []string              `json:"extraFittings"`
}

func (h *ListingHandler) ListApartments(c echo.Context) error {
	apartments, err := h.listingUseCase.ListApartments(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, apartments)
}

func (h *ListingHandler) GetApartment(c echo.Context) error {
	id := c.Param("id")
	apartment, err := h.listingUseCase.GetApartment(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, apartment)
}

func (h *ListingHandler) ListVehicles(c echo.Context) error {
	vehicleType := c.QueryParam("type")
	vehicles, err := h.listingUseCase.ListVehicles(c.Request().Context(), vehicleType)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, vehicles)
}

func (h *ListingHandler) GetVehicle(c echo.Context) error {
	id := c.Param("id")
	vehicle, err := h.listingUseCase.GetVehicle(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, vehicle)
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ctx := c.Request().Context()

	if req.Kind == "apartment" {
		apartment, err := h.listingUseCase.CreateApartment(ctx, usecase.CreateApartmentInput{
			Name:          req.Name,
			Price:         req.Price,
			Image:         req.Image,
			Description:   req.Description,
			Address:       req.Address,
			ContactNumber: req.ContactNumber,
			Specs: usecase.ApartmentSpecsInput{
				Bedrooms:  req.ApartmentSpec.Bedrooms,
				Bathrooms: req.ApartmentSpec.Bathrooms,
				Area:      req.ApartmentSpec.Area,
				Floor:     req.ApartmentSpec.Floor,
				Furnished: req.ApartmentSpec.Furnished,
				Parking:   req.ApartmentSpec.Parking,
				Amenities: req.ApartmentSpec.Amenities,
			},
		})
		if err != nil {
			return response.Error(c, err)
		}

		return response.Created(c, apartment)
	}

	vehicle, err := h.listingUseCase.CreateVehicle(ctx, usecase.CreateVehicleInput{
		Name:          req.Name,
		Price:         req.Price,
		Image:         req.Image,
		Description:   req.Description,
		Type:          req.Kind,
		ContactNumber: req.ContactNumber,
		Specs: usecase.VehicleSpecsInput{
			Transmission: req.Specs.Transmission,
			Mileage:      req.Specs.Mileage,
			Seats:        req.Specs.Seats,
			FuelType:     req.Specs.FuelType,
			Engine:       req.Specs.Engine,
			Type:         req.Specs.Type,
		},
		Problems:      req.Problems,
		IsRegistered:  req.IsRegistered,
		ExtraFittings: req.ExtraFittings,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, vehicle)
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	collection := c.Param("collection")
	id := c.Param("id")

	if err := h.listingUseCase.DeleteListing(c.Request().Context(), collection, id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Listing deleted successfully",
	})
}

func (h *ListingHandler) ModeratorOverview(c echo.Context) error {
	overview, err := h.listingUseCase.Overview(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, overview)
}
