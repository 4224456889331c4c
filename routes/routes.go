package routes

import (
	"net/http"
	"time"

	"tourbook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers booking and payment endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("", hb.Booking.ListBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.DELETE("/:id", hb.Booking.DeleteBookingHandler)
	}

	pay := r.Group("/api/payment")
	{
		pay.POST("/initiate", hb.Payment.InitiatePaymentHandler)
		// The gateway POSTs authoritative results and GETs plain
		// redirects/cancellations to the same endpoint.
		pay.POST("/callback", hb.Payment.PaymentCallbackHandler)
		pay.GET("/callback", hb.Payment.PaymentCallbackHandler)
	}
}

// RegisterActivityRoutes registers catalogue endpoints.
func RegisterActivityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/activities")
	{
		api.GET("", hb.Activity.ListActivitiesHandler)
		api.GET("/:id", hb.Activity.GetActivityHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	{
		admin.GET("/stats", hb.Admin.StatsHandler)

		admin.POST("/activities", hb.Activity.CreateActivityHandler)
		admin.PUT("/activities/:id", hb.Activity.UpdateActivityHandler)
		admin.DELETE("/activities/:id", hb.Activity.DeleteActivityHandler)

		admin.POST("/packages", hb.Activity.CreatePackageHandler)
		admin.PUT("/packages/:id", hb.Activity.UpdatePackageHandler)
		admin.DELETE("/packages/:id", hb.Activity.DeletePackageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterActivityRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
