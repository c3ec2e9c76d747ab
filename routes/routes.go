package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"andeanscapes/handlers"
)

// RegisterExperienceRoutes registers the catalog and reservation endpoints.
func RegisterExperienceRoutes(r *gin.Engine, eh *handlers.ExperienceHandler, rh *handlers.ReservationHandler) {
	api := r.Group("/api/experiences")
	{
		api.GET("", eh.ListExperiencesHandler)
		api.GET("/:id", eh.GetExperienceHandler)

		// Reservation session, keyed by experience id + X-Device-ID.
		api.GET("/:id/reservation", rh.GetStateHandler)
		api.PATCH("/:id/reservation", rh.UpdateHandler)
		api.POST("/:id/reservation/validate", rh.ValidateHandler)
		api.DELETE("/:id/reservation", rh.ResetHandler)
	}
}

// RegisterPaymentRoutes sets up the deposit checkout endpoint.
func RegisterPaymentRoutes(r *gin.Engine, ph *handlers.PaymentHandler) {
	api := r.Group("/api/payments")
	{
		api.POST("/link", ph.CreatePaymentLinkHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Andean Scapes"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, eh *handlers.ExperienceHandler, rh *handlers.ReservationHandler, ph *handlers.PaymentHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", handlers.DeviceIDHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterExperienceRoutes(r, eh, rh)
	RegisterPaymentRoutes(r, ph)
}
