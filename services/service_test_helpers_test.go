package services

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aartibhkm/admin2/config"
	"github.com/aartibhkm/admin2/models"
)

// newTestDB opens a fresh in-memory database migrated with all models. Each
// test gets its own named memory database so tests stay independent.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Admin{}, &models.Booking{}, &models.Contact{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// newTestConfig returns a config with fixed values for tests
func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:         "test-secret",
		DefaultAdminUsername: "admin",
		DefaultAdminPassword: "admin123",
		DefaultAdminEmail:    "admin@instapark.com",
	}
}

// seedAdmin creates an admin account directly through the service
func seedAdmin(t *testing.T, svc *AdminService, username, password string) *models.Admin {
	t.Helper()

	admin := &models.Admin{
		Username: username,
		Password: password,
		Email:    username + "@instapark.com",
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := svc.CreateAdmin(admin); err != nil {
		t.Fatalf("failed to seed admin %q: %v", username, err)
	}
	return admin
}
