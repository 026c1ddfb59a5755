package routes

import (
	"net/http"
	"time"

	"medibook/handlers"
	"medibook/middleware"
	"medibook/models"
	"medibook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.Users.RegisterUserHandler)
		api.POST("/login", hb.Users.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Users.GetProfileHandler)
		api.PUT("/me", hb.Users.UpdateProfileHandler)
		api.POST("/logout", hb.Users.RevokeAuthTokenHandler)
	}
}

// RegisterDoctorRoutes registers the public doctor catalog plus
// availability administration.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		// Public catalog endpoints.
		api.GET("", hb.Doctors.ListDoctorsHandler)
		api.GET("/:id", hb.Doctors.GetDoctorHandler)
		api.GET("/:id/availability", hb.Doctors.ListAvailabilityHandler)
		api.GET("/:id/available-slots", hb.Appointments.AvailableSlotsHandler)

		// Editing a schedule requires a doctor or admin token.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.PUT("/:id/availability",
			middleware.RequireRoles(models.RoleDoctor, models.RoleAdmin),
			hb.Doctors.SetAvailabilityHandler)
	}

	r.GET("/api/specializations", hb.Doctors.ListSpecializationsHandler)
}

// RegisterAppointmentRoutes registers booking and lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", middleware.RequireRoles(models.RolePatient), hb.Appointments.CreateAppointmentHandler)
		api.GET("", hb.Appointments.ListAppointmentsHandler)
		api.GET("/:id", hb.Appointments.GetAppointmentHandler)
		api.POST("/:id/cancel", hb.Appointments.CancelAppointmentHandler)
		api.PATCH("/:id/status",
			middleware.RequireRoles(models.RoleDoctor, models.RoleAdmin),
			hb.Appointments.UpdateStatusHandler)
		api.PATCH("/:id/notes", hb.Appointments.UpdateNotesHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		adminGroup.Use(middleware.RequireRoles(models.RoleAdmin))
		adminGroup.GET("/users", hb.Admin.ListUsersHandler)
		adminGroup.GET("/doctors", hb.Admin.ListAllDoctorsHandler)
		adminGroup.POST("/doctors", hb.Admin.CreateDoctorHandler)
		adminGroup.PATCH("/doctors/:id", hb.Admin.UpdateDoctorHandler)
		adminGroup.DELETE("/doctors/:id", hb.Admin.DisableDoctorHandler)
		adminGroup.POST("/specializations", hb.Admin.CreateSpecializationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint serving the
// monitor's latest backing-store snapshot. Before the first check the
// endpoint reports ok so startup ordering cannot fail readiness checks.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		snapshot := utils.GetHealthStatus()
		if !snapshot.CheckedAt.IsZero() && !snapshot.Healthy() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "checks": snapshot})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": snapshot})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
