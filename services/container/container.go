package container

import (
	"sync"

	"gorm.io/gorm"

	"github.com/aartibhkm/admin2/config"
	"github.com/aartibhkm/admin2/services"
)

// ServiceContainer wires every service behind a single dependency root
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	jwtService       services.InterfaceJWTService
	adminService     services.InterfaceAdminService
	bookingService   services.InterfaceBookingService
	contactService   services.InterfaceContactService
	dashboardService services.InterfaceDashboardService

	mu sync.RWMutex
}

// NewServiceContainer creates the container and initializes all services
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config)
	c.adminService = services.NewAdminService(c.db, c.config)
	c.bookingService = services.NewBookingService(c.db, c.config)
	c.contactService = services.NewContactService(c.db, c.config)
	c.dashboardService = services.NewDashboardService(c.db, c.config)
}

// GetService returns the service registered under name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "admin":
		return c.adminService
	case "booking":
		return c.bookingService
	case "contact":
		return c.contactService
	case "dashboard":
		return c.dashboardService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
