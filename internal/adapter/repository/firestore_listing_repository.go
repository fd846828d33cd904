package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rentease/internal/domain/entity"
	"rentease/internal/domain/repository"
	"rentease/pkg/errors"
)

type firestoreListingRepository struct {
	client *firestore.Client
}

func NewFirestoreListingRepository(client *firestore.Client) repository.ListingRepository {
	return &firestoreListingRepository{
		client: client,
	}
}

func (r *firestoreListingRepository) ListApartments(ctx context.Context) ([]*entity.Apartment, error) {
	iter := r.client.Collection(repository.CollectionApartments).Documents(ctx)
	defer iter.Stop()

	var apartments []*entity.Apartment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Unavailable("Failed to list apartments", err)
		}

		var apartment entity.Apartment
		if err := doc.DataTo(&apartment); err != nil {
			return nil, errors.InvalidData("Apartment", err)
		}
		apartment.ID = doc.Ref.ID
		apartments = append(apartments, &apartment)
	}

	return apartments, nil
}

// ListVehicles scans the whole collection and filters by type on the client
// side. Collections are small enough that this matters less than keeping the
// read path identical for both kinds; revisit if the catalog grows.
func (r *firestoreListingRepository) ListVehicles(ctx context.Context, vehicleType string) ([]*entity.Vehicle, error) {
	all, err := r.ListAllVehicles(ctx)
	if err != nil {
		return nil, err
	}

	var vehicles []*entity.Vehicle
	for _, vehicle := range all {
		if vehicle.Type == vehicleType {
			vehicles = append(vehicles, vehicle)
		}
	}

	return vehicles, nil
}

func (r *firestoreListingRepository) ListAllVehicles(ctx context.Context) ([]*entity.Vehicle, error) {
	iter := r.client.Collection(repository.CollectionVehicles).Documents(ctx)
	defer iter.Stop()

	var vehicles []*entity.Vehicle
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Unavailable("Failed to list vehicles", err)
		}

		var vehicle entity.Vehicle
		if err := doc.DataTo(&vehicle); err != nil {
			return nil, errors.InvalidData("Vehicle", err)
		}
		vehicle.ID = doc.Ref.ID
		vehicles = append(vehicles, &vehicle)
	}

	return vehicles, nil
}

func (r *firestoreListingRepository) GetApartment(ctx context.Context, id string) (*entity.Apartment, error) {
	doc, err := r.client.Collection(repository.CollectionApartments).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Apartment", err)
		}
		return nil, errors.Unavailable("Failed to get apartment", err)
	}

	var apartment entity.Apartment
	if err := doc.DataTo(&apartment); err != nil {
		return nil, errors.InvalidData("Apartment", err)
	}
	apartment.ID = doc.Ref.ID

	return &apartment, nil
}

func (r *firestoreListingRepository) GetVehicle(ctx context.Context, id string) (*entity.Vehicle, error) {
	doc, err := r.client.Collection(repository.CollectionVehicles).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Vehicle", err)
		}
		return nil, errors.Unavailable("Failed to get vehicle", err)
	}

	var vehicle entity.Vehicle
	if err := doc.DataTo(&vehicle); err != nil {
		return nil, errors.InvalidData("Vehicle", err)
	}
	vehicle.ID = doc.Ref.ID

	return &vehicle, nil
}

func (r *firestoreListingRepository) CreateApartment(ctx context.Context, apartment *entity.Apartment) error {
	doc := r.client.Collection(repository.CollectionApartments).NewDoc()
	apartment.ID = doc.ID

	if apartment.CreatedAt.IsZero() {
		apartment.CreatedAt = time.Now()
	}

	if _, err := doc.Set(ctx, apartment); err != nil {
		return errors.Unavailable("Failed to create apartment", err)
	}

	return nil
}

func (r *firestoreListingRepository) CreateVehicle(ctx context.Context, vehicle *entity.Vehicle) error {
	doc := r.client.Collection(repository.CollectionVehicles).NewDoc()
	vehicle.ID = doc.ID

	if vehicle.CreatedAt.IsZero() {
		vehicle.CreatedAt = time.Now()
	}

	if _, err := doc.Set(ctx, vehicle); err != nil {
		return errors.Unavailable("Failed to create vehicle", err)
	}

	return nil
}

// Delete does not check existence first; deleting an id that is already gone
// reports success, matching the store's idempotent delete.
func (r *firestoreListingRepository) Delete(ctx context.Context, collection, id string) error {
	_, err := r.client.Collection(collection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Unavailable("Failed to delete listing", err)
	}

	return nil
}
