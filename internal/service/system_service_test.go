package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/database"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/testutil"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/version"
)

// TestSystemService tests health and version reporting.
//
// WHY: Deployments poll these to decide whether the service is ready and
// whether migrations are outstanding.
func TestSystemService(t *testing.T) {
	t.Run("healthy database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)

		assert.NoError(t, svc.CheckHealth())
	})

	t.Run("closed database is unhealthy", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)
		db.Close()

		assert.Error(t, svc.CheckHealth())
	})

	t.Run("reports versions of a migrated database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)

		info, err := svc.CheckVersion()
		require.NoError(t, err)
		assert.Equal(t, version.Version, info.AppVersion)
		assert.Equal(t, "2", info.DbVersion)
		assert.False(t, info.MigrationNeeded)
		assert.Nil(t, info.MigrationMessage)
		assert.True(t, info.Features["report_snapshots"])
		assert.EqualValues(t, database.LatestSchemaVersion, 2)
	})
}
