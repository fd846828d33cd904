package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rentease/internal/domain/entity"
)

func ApartmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apartments",
		Short: "List all apartments",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer env.close()

			apartments, err := env.listings.ListApartments(cmd.Context())
			if err != nil {
				return err
			}

			for _, a := range apartments {
				fmt.Printf("%s  %-30s  %d/month  %s\n", a.ID, a.Name, a.Price, a.Address)
			}
			fmt.Printf("%d apartment(s)\n", len(apartments))
			return nil
		},
	}
}

func VehiclesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicles",
		Short: "List vehicles of one type",
		RunE: func(cmd *cobra.Command, args []string) error {
			vehicleType, _ := cmd.Flags().GetString("type")

			env, err := buildEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer env.close()

			vehicles, err := env.listings.ListVehicles(cmd.Context(), vehicleType)
			if err != nil {
				return err
			}

			for _, v := range vehicles {
				fmt.Printf("%s  %-30s  %d/day  %s\n", v.ID, v.Name, v.Price, v.Specs.Engine)
			}
			fmt.Printf("%d %s(s)\n", len(vehicles), vehicleType)
			return nil
		},
	}

	cmd.Flags().String("type", entity.VehicleTypeCar, "vehicle type (car or bike)")
	return cmd
}

func BookingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "List the full booking history",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer env.close()

			bookings, err := env.bookings.ListBookings(cmd.Context())
			if err != nil {
				return err
			}

			for _, b := range bookings {
				fmt.Printf("%s  %-30s  %s  %s -> %s  total=%d  [%s]\n",
					b.ID, b.ItemName, b.ItemType, b.StartDate, b.EndDate, b.TotalPrice, b.Status)
			}
			fmt.Printf("%d booking(s)\n", len(bookings))
			return nil
		},
	}
}
