package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/aartibhkm/admin2/config"
	"github.com/aartibhkm/admin2/controllers"
	_ "github.com/aartibhkm/admin2/docs"
	"github.com/aartibhkm/admin2/middleware"
	"github.com/aartibhkm/admin2/services/container"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS for the admin console origin
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.ConsoleOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, Origin, Cache-Control, X-Requested-With, x-auth-token")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	r.Use(middleware.RequestID())

	serviceContainer := container.NewServiceContainer(db, cfg)
	middleware.InitAuthMiddleware(cfg)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", controllers.HealthCheck)

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(r *gin.Engine, container *container.ServiceContainer) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers routes reachable without a token
func registerPublicRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Login is the only brute-forceable surface, so it is rate limited
	api.POST("/auth/login",
		middleware.LoginRateLimiter(1, 5),
		controllers.HandleAuthFunc(container, "login"))
}

// registerAuthenticatedRoutes registers routes behind the token gate
func registerAuthenticatedRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	auth := api.Group("/")
	auth.Use(middleware.Authentication())

	// Current account
	auth.GET("/auth/admin", controllers.HandleAuthFunc(container, "getCurrentAdmin"))

	// Admin account routes
	auth.GET("/admins", controllers.HandleAdminFunc(container, "getAdmins"))
	auth.POST("/admins", controllers.HandleAdminFunc(container, "createAdmin"))
	auth.PUT("/admins/:id", controllers.HandleAdminFunc(container, "updateAdmin"))
	auth.PUT("/admins/:id/password", controllers.HandleAdminFunc(container, "updatePassword"))
	auth.DELETE("/admins/:id", controllers.HandleAdminFunc(container, "deleteAdmin"))

	// Booking routes
	auth.GET("/bookings", controllers.HandleBookingFunc(container, "getBookings"))
	auth.POST("/bookings", controllers.HandleBookingFunc(container, "createBooking"))
	auth.GET("/bookings/stats/counts", controllers.HandleBookingFunc(container, "getBookingStats"))
	auth.GET("/bookings/:id", controllers.HandleBookingFunc(container, "getBooking"))
	auth.PUT("/bookings/:id", controllers.HandleBookingFunc(container, "updateBooking"))
	auth.PUT("/bookings/:id/status", controllers.HandleBookingFunc(container, "updateBookingStatus"))

	// Contact routes
	auth.GET("/contacts", controllers.HandleContactFunc(container, "getContacts"))
	auth.POST("/contacts", controllers.HandleContactFunc(container, "createContact"))
	auth.GET("/contacts/stats/counts", controllers.HandleContactFunc(container, "getContactStats"))
	auth.GET("/contacts/:id", controllers.HandleContactFunc(container, "getContact"))
	auth.PUT("/contacts/:id", controllers.HandleContactFunc(container, "updateContact"))
	auth.PUT("/contacts/:id/resolve", controllers.HandleContactFunc(container, "resolveContact"))
	auth.PUT("/contacts/:id/assign", controllers.HandleContactFunc(container, "assignContact"))

	// Dashboard routes
	auth.GET("/dashboard/stats", controllers.HandleDashboardFunc(container, "getStats"))
	auth.GET("/dashboard/bookings/daily", controllers.HandleDashboardFunc(container, "getDailyBookings"))
	auth.GET("/dashboard/locations", controllers.HandleDashboardFunc(container, "getLocationBookings"))
}
