package routes

import (
	"net/http"
	"time"

	"stylebook/handlers"
	"stylebook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes sets up the booking lifecycle and availability
// endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		// Slot discovery is public: clients browse before signing in.
		api.GET("/available-slots", hb.Appointments.AvailableSlotsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware())
		protected.GET("", hb.Appointments.ListHandler)
		protected.POST("", hb.Appointments.CreateHandler)
		protected.GET("/stylist", middleware.RequireRole("stylist"), hb.Appointments.ListForStylistHandler)
		protected.GET("/salon/:salonId", middleware.RequireRole("stylist"), hb.Appointments.ListForSalonHandler)
		protected.GET("/countdown/stats", hb.Appointments.CountdownStatsHandler)
		protected.GET("/:id", hb.Appointments.GetByIDHandler)
		protected.PUT("/:id", hb.Appointments.UpdateStatusHandler)
		protected.DELETE("/:id", hb.Appointments.DeleteHandler)
		protected.GET("/:id/countdown", hb.Appointments.CountdownHandler)
		protected.GET("/:id/check-rejection", hb.Appointments.CheckRejectionHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthUserMiddleware(), middleware.JWTAuthAdminMiddleware())
		admin.POST("/reject-past", hb.Appointments.RejectPastHandler)
	}
}

// RegisterUserRoutes registers account and profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/me", hb.Users.GetProfileHandler)
		api.PUT("/me", hb.Users.UpdateProfileHandler)
		api.PUT("/me/fcm-token", hb.Users.UpdateFCMTokenHandler)
	}
}

// RegisterStylistRoutes registers the stylist directory endpoints.
func RegisterStylistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/stylists")
	{
		api.GET("", hb.Stylists.ListHandler)
		api.GET("/:id", hb.Stylists.GetByIDHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(), middleware.RequireRole("stylist"))
		protected.POST("", hb.Stylists.CreateHandler)
		protected.PUT("/:id", hb.Stylists.UpdateHandler)
		protected.PUT("/:id/working-hours", hb.Stylists.UpdateWorkingHoursHandler)
		protected.DELETE("/:id", hb.Stylists.DeleteHandler)
	}
}

// RegisterSalonRoutes registers the salon directory endpoints.
func RegisterSalonRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/salons")
	{
		api.GET("", hb.Salons.ListHandler)
		api.GET("/:id", hb.Salons.GetByIDHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(), middleware.RequireRole("stylist"))
		protected.POST("", hb.Salons.CreateHandler)
		protected.PUT("/:id", hb.Salons.UpdateHandler)
		protected.PUT("/:id/opening-hours", hb.Salons.UpdateOpeningHoursHandler)
		protected.DELETE("/:id", hb.Salons.DeleteHandler)
	}
}

// RegisterServiceRoutes registers the bookable service catalog endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Services.ListHandler)
		api.GET("/:id", hb.Services.GetByIDHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(), middleware.RequireRole("stylist"))
		protected.POST("", hb.Services.CreateHandler)
		protected.PUT("/:id", hb.Services.UpdateHandler)
		protected.DELETE("/:id", hb.Services.DeleteHandler)
	}
}

// RegisterStorageRoutes registers media upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/uploads")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("/:bucket", hb.Storage.UploadFileHandler)
		api.GET("/:bucket/:filename", hb.Storage.GetDownloadURLHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Stylebook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAppointmentRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterStylistRoutes(r, hb)
	RegisterSalonRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
}
