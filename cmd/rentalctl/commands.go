package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/app"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/config"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/database"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/validation"
)

// openDB loads the configuration and opens the configured database.
func openDB() (*sql.DB, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}
	return db, cfg, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply all pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, cfg, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(db); err != nil {
				return err
			}

			v, err := database.SchemaVersion(db)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s migrated to schema version %d\n", cfg.Database.Path, v)
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	var (
		userID     string
		propertyID string
		year       int
		today      string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute an annual report and print it as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			clock := time.Now
			if today != "" {
				fixed, err := time.Parse("2006-01-02", today)
				if err != nil {
					return fmt.Errorf("invalid --today: %w", err)
				}
				clock = func() time.Time { return fixed }
			}
			if year == 0 {
				year = clock().Year()
			}
			if err := validation.ValidateYear(year); err != nil {
				return err
			}
			if propertyID != "" {
				if err := validation.ValidateUUID(propertyID); err != nil {
					return err
				}
			}

			db, cfg, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			services, err := app.New(db, cfg, clock)
			if err != nil {
				return err
			}

			report, err := services.Analytics.GetAnnualReport(cmd.Context(), model.ReportScope{
				UserID:     userID,
				PropertyID: propertyID,
				Year:       year,
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "owner user id (required)")
	cmd.Flags().StringVar(&propertyID, "property", "", "restrict the report to one property")
	cmd.Flags().IntVar(&year, "year", 0, "report year (default: current year)")
	cmd.Flags().StringVar(&today, "today", "", "evaluate as of this date, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func snapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Recalculate the stored current-year portfolio report of every owner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, cfg, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			services, err := app.New(db, cfg, time.Now)
			if err != nil {
				return err
			}

			written, err := services.Snapshots.RefreshAll(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d snapshots\n", written)
			return err
		},
	}
}
