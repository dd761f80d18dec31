// @title           InstaPark Admin Service API
// @version         1.0
// @description     Parking reservation back-office REST API
// @termsOfService  http://swagger.io/terms/

// @host      localhost:3001
// @BasePath  /api

// @securityDefinitions.apikey  TokenAuth
// @in                          header
// @name                        x-auth-token
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/aartibhkm/admin2/config"
	"github.com/aartibhkm/admin2/internal/infrastructure/database"
	"github.com/aartibhkm/admin2/models"
	"github.com/aartibhkm/admin2/routes"
	"github.com/aartibhkm/admin2/services"
)

func main() {
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		config.Warning("no .env file loaded: %v", err)
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		config.Error("failed to create database connection pool: %v", err)
		os.Exit(1)
	}
	db := pool.GetDB()

	if err := autoMigrate(db); err != nil {
		config.Error("database migration failed: %v", err)
		os.Exit(1)
	}

	// Seed the default super-admin when the table is empty so a fresh
	// deployment is never locked out.
	adminService := services.NewAdminService(db, cfg)
	if err := adminService.EnsureDefaultAdmin(); err != nil {
		config.Error("default admin seed failed: %v", err)
		os.Exit(1)
	}

	r := routes.SetupRouter(db, cfg)

	config.Info("server listening on http://0.0.0.0:%s", cfg.ServerPort)
	if err := r.Run("0.0.0.0:" + cfg.ServerPort); err != nil {
		config.Error("server exited: %v", err)
		os.Exit(1)
	}
}

// autoMigrate creates or extends the schema for all models
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Booking{},
		&models.Contact{},
	)
}
