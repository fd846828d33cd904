package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rentease/internal/domain/repository"
)

func DeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <collection> <id>",
		Short: "Hard-delete a listing or booking",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			collection, id := args[0], args[1]

			env, err := buildEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer env.close()

			switch collection {
			case repository.CollectionBookings:
				err = env.bookings.DeleteBooking(cmd.Context(), id)
			default:
				err = env.listings.DeleteListing(cmd.Context(), collection, id)
			}
			if err != nil {
				return err
			}

			fmt.Printf("Deleted %s/%s\n", collection, id)
			return nil
		},
	}
}
