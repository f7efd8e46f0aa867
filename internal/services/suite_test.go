// internal/services/suite_test.go
package services

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/advisorbridge/advisorbridge-backend/internal/models"
	"github.com/advisorbridge/advisorbridge-backend/internal/store"
)

// newTestDB opens a fresh in-memory database per test. The single-connection
// pool keeps the schema alive for the test's lifetime.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Opportunity{},
		&models.Application{},
		&models.Connection{},
	))

	return db
}

type testStores struct {
	users         store.UserStore
	opportunities store.OpportunityStore
	applications  store.ApplicationStore
	connections   store.ConnectionStore
}

func newTestStores(db *gorm.DB) testStores {
	return testStores{
		users:         store.NewUserStore(db),
		opportunities: store.NewOpportunityStore(db),
		applications:  store.NewApplicationStore(db),
		connections:   store.NewConnectionStore(db),
	}
}

func createTestUser(t *testing.T, users store.UserStore, role models.UserRole, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:    email,
		FullName: "Test " + string(role),
		Role:     role,
		Status:   models.UserStatusActive,
	}
	if role == models.UserRoleCompany {
		user.CompanyName = "Acme Ventures"
	}
	if role == models.UserRoleLP {
		user.Expertise = pq.StringArray{"Marketing", "Fundraising"}
	}
	require.NoError(t, user.SetPassword("Sup3rSecret"))
	require.NoError(t, users.Create(user))
	return user
}
