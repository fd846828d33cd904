package entity

import (
	"time"
)

const (
	VehicleTypeCar  = "car"
	VehicleTypeBike = "bike"
)

// SpecPlaceholder fills optional spec fields at creation time so list and
// detail views can render every row without null checks.
const SpecPlaceholder = "N/A"

type ApartmentSpecs struct {
	Bedrooms  string   `json:"bedrooms" firestore:"bedrooms"`
	Bathrooms string   `json:"bathrooms" firestore:"bathrooms"`
	Area      string   `json:"area" firestore:"area"`
	Floor     string   `json:"floor" firestore:"floor"`
	Furnished bool     `json:"furnished" firestore:"furnished"`
	Parking   bool     `json:"parking" firestore:"parking"`
	Amenities []string `json:"amenities,omitempty" firestore:"amenities,omitempty"`
}

type Apartment struct {
	ID            string         `json:"id" firestore:"-"`
	Name          string         `json:"name" firestore:"name"`
	Image         string         `json:"image" firestore:"image"`
	Price         int64          `json:"price" firestore:"price"`
	Description   string         `json:"description" firestore:"description"`
	Address       string         `json:"address" firestore:"address"`
	Specs         ApartmentSpecs `json:"specs" firestore:"specs"`
	ContactNumber string         `json:"contactNumber" firestore:"contactNumber"`
	CreatedAt     time.Time      `json:"createdAt" firestore:"createdAt"`
}

type VehicleSpecs struct {
	Transmission string `json:"transmission" firestore:"transmission"`
	Mileage      string `json:"mileage" firestore:"mileage"`
	Seats        string `json:"seats" firestore:"seats"`
	FuelType     string `json:"fuelType" firestore:"fuelType"`
	Engine       string `json:"engine" firestore:"engine"`
	Type         string `json:"type" firestore:"type"`
}

type Vehicle struct {
	ID            string       `json:"id" firestore:"-"`
	Name          string       `json:"name" firestore:"name"`
	Image         string       `json:"image" firestore:"image"`
	Price         int64        `json:"price" firestore:"price"`
	Type          string       `json:"type" firestore:"type"`
	Description   string       `json:"description" firestore:"description"`
	Specs         VehicleSpecs `json:"specs" firestore:"specs"`
	Problems      string       `json:"problems" firestore:"problems"`
	IsRegistered  bool         `json:"isRegistered" firestore:"isRegistered"`
	ExtraFittings []string     `json:"extraFittings,omitempty" firestore:"extraFittings,omitempty"`
	ContactNumber string       `json:"contactNumber" firestore:"contactNumber"`
	CreatedAt     time.Time    `json:"createdAt" firestore:"createdAt"`
}

// FillDefaults replaces empty optional spec fields with the placeholder.
// Bedrooms and bathrooms are included: the write path has always stored the
// placeholder for them when the form left them blank.
func (s *ApartmentSpecs) FillDefaults() {
	if s.Bedrooms == "" {
		s.Bedrooms = SpecPlaceholder
	}
	if s.Bathrooms == "" {
		s.Bathrooms = SpecPlaceholder
	}
	if s.Floor == "" {
		s.Floor = SpecPlaceholder
	}
}

// FillDefaults replaces empty optional spec fields with the placeholder.
// Engine and mileage are required upstream and are left untouched.
func (s *VehicleSpecs) FillDefaults() {
	if s.Transmission == "" {
		s.Transmission = SpecPlaceholder
	}
	if s.Seats == "" {
		s.Seats = SpecPlaceholder
	}
	if s.FuelType == "" {
		s.FuelType = SpecPlaceholder
	}
	if s.Type == "" {
		s.Type = SpecPlaceholder
	}
}
