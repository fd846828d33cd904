package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rentease/internal/domain/entity"
	"rentease/internal/domain/repository"
	"rentease/internal/viewstate"
)

// ConsoleCmd runs an interactive moderation session. Each screen is backed by
// a view-state synchronizer, so deletes are optimistic and a failed delete
// reconciles by re-fetching, the same way the mobile screens behave.
func ConsoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Interactive moderation session",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer env.close()

			return runConsole(cmd.Context(), env)
		},
	}
}

type screen interface {
	load() error
	refresh() error
	delete(id string) error
	print()
	close()
}

func runConsole(ctx context.Context, env *moderatorEnv) error {
	screens := map[string]screen{
		"apartments": newApartmentScreen(ctx, env),
		"vehicles":   newVehicleScreen(ctx, env),
		"bookings":   newBookingScreen(ctx, env),
	}
	defer func() {
		for _, s := range screens {
			s.close()
		}
	}()

	for name, s := range screens {
		if err := s.load(); err != nil {
			fmt.Printf("%s: load failed: %v\n", name, err)
		}
	}

	fmt.Println("commands: show <screen> | refresh <screen> | delete <screen> <id> | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}

		if len(fields) < 2 {
			fmt.Println("missing screen name")
			continue
		}

		s, ok := screens[fields[1]]
		if !ok {
			fmt.Printf("unknown screen %q\n", fields[1])
			continue
		}

		switch fields[0] {
		case "show":
			s.print()
		case "refresh":
			if err := s.refresh(); err != nil {
				fmt.Printf("refresh failed: %v\n", err)
			}
			s.print()
		case "delete":
			if len(fields) < 3 {
				fmt.Println("usage: delete <screen> <id>")
				continue
			}
			if err := s.delete(fields[2]); err != nil {
				fmt.Printf("delete failed, view reconciled: %v\n", err)
			}
			s.print()
		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}
}

type apartmentScreen struct {
	list *viewstate.List[*entity.Apartment]
}

func newApartmentScreen(ctx context.Context, env *moderatorEnv) *apartmentScreen {
	return &apartmentScreen{
		list: viewstate.NewList(ctx,
			env.listings.ListApartments,
			func(ctx context.Context, id string) error {
				return env.listings.DeleteListing(ctx, repository.CollectionApartments, id)
			},
			func(a *entity.Apartment) string { return a.ID },
		),
	}
}

func (s *apartmentScreen) load() error { return s.list.Load() }
func (s *apartmentScreen) refresh() error { return s.list.Refresh() }
func (s *apartmentScreen) delete(id string) error { return s.list.Delete(id) }
func (s *apartmentScreen) close() { s.list.Close() }

func (s *apartmentScreen) print() {
	snap := s.list.Snapshot()
	fmt.Printf("apartments [%s]\n", snap.Phase)
	for _, a := range snap.Items {
		fmt.Printf("  %s  %-30s  %d/month\n", a.ID, a.Name, a.Price)
	}
	if snap.Err != nil {
		fmt.Printf("  error: %v\n", snap.Err)
	}
}

type vehicleScreen struct {
	list *viewstate.List[*entity.Vehicle]
}

func newVehicleScreen(ctx context.Context, env *moderatorEnv) *vehicleScreen {
	return &vehicleScreen{
		list: viewstate.NewList(ctx,
			func(ctx context.Context) ([]*entity.Vehicle, error) {
				overview, err := env.listings.Overview(ctx)
				if err != nil {
					return nil, err
				}
				return overview.Vehicles, nil
			},
			func(ctx context.Context, id string) error {
				return env.listings.DeleteListing(ctx, repository.CollectionVehicles, id)
			},
			func(v *entity.Vehicle) string { return v.ID },
		),
	}
}

func (s *vehicleScreen) load() error { return s.list.Load() }
func (s *vehicleScreen) refresh() error { return s.list.Refresh() }
func (s *vehicleScreen) delete(id string) error { return s.list.Delete(id) }
func (s *vehicleScreen) close() { s.list.Close() }

func (s *vehicleScreen) print() {
	snap := s.list.Snapshot()
	fmt.Printf("vehicles [%s]\n", snap.Phase)
	for _, v := range snap.Items {
		fmt.Printf("  %s  %-30s  %s  %d/day\n", v.ID, v.Name, v.Type, v.Price)
	}
	if snap.Err != nil {
		fmt.Printf("  error: %v\n", snap.Err)
	}
}

type bookingScreen struct {
	list *viewstate.List[*entity.Booking]
}

func newBookingScreen(ctx context.Context, env *moderatorEnv) *bookingScreen {
	return &bookingScreen{
		list: viewstate.NewList(ctx,
			env.bookings.ListBookings,
			env.bookings.DeleteBooking,
			func(b *entity.Booking) string { return b.ID },
		),
	}
}

func (s *bookingScreen) load() error { return s.list.Load() }
func (s *bookingScreen) refresh() error { return s.list.Refresh() }
func (s *bookingScreen) delete(id string) error { return s.list.Delete(id) }
func (s *bookingScreen) close() { s.list.Close() }

func (s *bookingScreen) print() {
	snap := s.list.Snapshot()
	fmt.Printf("bookings [%s]\n", snap.Phase)
	for _, b := range snap.Items {
		fmt.Printf("  %s  %-30s  total=%d  [%s]\n", b.ID, b.ItemName, b.TotalPrice, b.Status)
	}
	if snap.Err != nil {
		fmt.Printf("  error: %v\n", snap.Err)
	}
}
