package service

import (
	"database/sql"
	"fmt"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/database"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db       *sql.DB
	features map[string]bool
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB, features map[string]bool) *SystemService {
	return &SystemService{
		db:       db,
		features: features,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion reports the application version, the applied schema version
// and which optional features are switched on.
func (s *SystemService) CheckVersion() (model.VersionInfo, error) {
	dbVersion, err := database.SchemaVersion(s.db)
	if err != nil {
		return model.VersionInfo{}, err
	}

	info := model.VersionInfo{
		AppVersion: version.Version,
		DbVersion:  fmt.Sprintf("%d", dbVersion),
		Features:   s.features,
	}

	if dbVersion < database.LatestSchemaVersion {
		msg := fmt.Sprintf("database schema %d is behind %d, run migrations", dbVersion, database.LatestSchemaVersion)
		info.MigrationNeeded = true
		info.MigrationMessage = &msg
	}

	return info, nil
}
