package services

import (
	"path/filepath"
	"testing"

	"foodly-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh sqlite database in a per-test temp dir and runs
// the full migration, so every test starts from an empty schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserAddress{},
		&models.Category{},
		&models.MenuItem{},
		&models.MenuVariant{},
		&models.MenuAddon{},
		&models.DeliveryZone{},
		&models.RestaurantProfile{},
		&models.Setting{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func intPtr(v int) *int           { return &v }
func uintPtr(v uint) *uint        { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
func boolPtr(v bool) *bool        { return &v }
