// Command rentalctl runs migrations and computes reports without the HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "rentalctl",
		Short:   "Rental analytics maintenance tool",
		Version: version.Version,
	}

	rootCmd.AddCommand(
		migrateCmd(),
		reportCmd(),
		snapshotCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
