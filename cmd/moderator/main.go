package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rentease/cmd/moderator/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "moderator",
		Short: "Moderation tool for the rental catalog",
	}

	rootCmd.AddCommand(
		commands.ApartmentsCmd(),
		commands.VehiclesCmd(),
		commands.BookingsCmd(),
		commands.DeleteCmd(),
		commands.ConsoleCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
