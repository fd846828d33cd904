package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"rentease/internal/domain/entity"
	"rentease/internal/domain/repository"
	"rentease/pkg/errors"
)

type firestoreBookingRepository struct {
	client *firestore.Client
}

func NewFirestoreBookingRepository(client *firestore.Client) repository.BookingRepository {
	return &firestoreBookingRepository{
		client: client,
	}
}

func (r *firestoreBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	doc := r.client.Collection(repository.CollectionBookings).NewDoc()
	booking.ID = doc.ID

	if _, err := doc.Set(ctx, booking); err != nil {
		return errors.Unavailable("Failed to create booking", err)
	}

	return nil
}

// List returns every booking in the collection, not just the caller's.
// The history view has always been unscoped; see DESIGN.md.
func (r *firestoreBookingRepository) List(ctx context.Context) ([]*entity.Booking, error) {
	iter := r.client.Collection(repository.CollectionBookings).Documents(ctx)
	defer iter.Stop()

	var bookings []*entity.Booking
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Unavailable("Failed to list bookings", err)
		}

		var booking entity.Booking
		if err := doc.DataTo(&booking); err != nil {
			return nil, errors.InvalidData("Booking", err)
		}
		booking.ID = doc.Ref.ID
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *firestoreBookingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(repository.CollectionBookings).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Unavailable("Failed to delete booking", err)
	}

	return nil
}
