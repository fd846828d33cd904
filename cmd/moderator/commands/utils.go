package commands

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"rentease/internal/adapter/repository"
	"rentease/internal/usecase"
	"rentease/pkg/config"
)

type moderatorEnv struct {
	listings *usecase.ListingUseCase
	bookings *usecase.BookingUseCase
	close    func()
}

func buildEnv(ctx context.Context) (*moderatorEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var opt option.ClientOption
	if cfg.ServiceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON))
	} else {
		if _, err := os.Stat(cfg.ServiceAccountPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("service account file does not exist: %s", cfg.ServiceAccountPath)
		}
		opt = option.WithCredentialsFile(cfg.ServiceAccountPath)
	}

	client, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %v", err)
	}

	listingRepo := repository.NewFirestoreListingRepository(client)
	bookingRepo := repository.NewFirestoreBookingRepository(client)

	return &moderatorEnv{
		listings: usecase.NewListingUseCase(listingRepo),
		bookings: usecase.NewBookingUseCase(bookingRepo, listingRepo),
		close:    func() { client.Close() },
	}, nil
}
