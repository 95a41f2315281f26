package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"roamify/handlers"
	"roamify/middleware"
	"roamify/models"
)

// RegisterPublicRoutes registers the browse pages everyone can reach.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.Vehicles.List)
	r.GET("/vehicles", hb.Vehicles.List)
	r.GET("/vehicles/nearby", hb.Vehicles.Nearby)
	r.GET("/vehicle/:id", hb.Vehicles.Detail)
	r.GET("/vehicle/:id/availability", hb.Vehicles.CheckAvailability)

	r.GET("/hidden-gems", hb.Gems.List)
	r.GET("/hidden-gems/:id", hb.Gems.Detail)

	r.GET("/tours", hb.Tours.List)
	r.GET("/tours/:id", hb.Tours.Detail)
	r.GET("/tours/:id/availability", hb.Tours.CheckAvailability)

	r.GET("/ws/search", hb.Search.Serve)
	r.GET("/session", hb.Auth.Me)
}

// RegisterAuthRoutes registers login/signup (anonymous-only) and logout.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	anon := r.Group("", middleware.AnonymousOnly())
	{
		anon.POST("/login", hb.Auth.Login)
		anon.POST("/signup", hb.Auth.Signup)
		anon.POST("/vendor/signup", hb.Auth.VendorSignup)
	}
	r.POST("/logout", hb.Auth.Logout)
}

// RegisterUserRoutes registers the signed-in account pages.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	user := r.Group("", middleware.RequireAuth())
	{
		user.GET("/profile", hb.Account.Profile)
		user.PUT("/profile", hb.Account.UpdateProfile)

		user.GET("/bookmarks", hb.Account.Bookmarks)
		user.POST("/bookmarks/:id", hb.Account.AddBookmark)
		user.DELETE("/bookmarks/:id", hb.Account.RemoveBookmark)

		user.GET("/favorites", hb.Account.Favorites)
		user.POST("/favorites/:id", hb.Account.AddFavorite)
		user.DELETE("/favorites/:id", hb.Account.RemoveFavorite)

		user.GET("/bookings", hb.Account.Bookings)
		user.POST("/bookings/:id/cancel", hb.Account.CancelBooking)

		user.POST("/vehicle/:id/book", hb.Vehicles.Book)
		user.POST("/tours/:id/book", hb.Tours.Book)
	}
}

// RegisterAdminRoutes registers the admin dashboard behind the admin role.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adm := r.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	{
		adm.GET("/tours", hb.Admin.Tours)
		adm.POST("/tours", hb.Admin.CreateTour)
		adm.PUT("/tours/:id", hb.Admin.UpdateTour)
		adm.DELETE("/tours/:id", hb.Admin.DeleteTour)

		adm.GET("/hidden-gems", hb.Admin.HiddenGems)
		adm.POST("/hidden-gems", hb.Admin.CreateHiddenGem)
		adm.PUT("/hidden-gems/:id", hb.Admin.UpdateHiddenGem)
		adm.DELETE("/hidden-gems/:id", hb.Admin.DeleteHiddenGem)

		adm.GET("/tour-bookings", hb.Admin.TourBookings)
		adm.PATCH("/tour-bookings/:id/status", hb.Admin.UpdateTourBookingStatus)
		adm.POST("/tour-bookings/:id/cancel", hb.Admin.CancelTourBooking)

		adm.GET("/bookings", hb.Admin.VehicleBookings)
		adm.PATCH("/bookings/:id/status", hb.Admin.UpdateVehicleBookingStatus)
		adm.POST("/bookings/:id/cancel", hb.Admin.CancelVehicleBooking)

		adm.POST("/vehicles", hb.Admin.CreateVehicle)

		adm.GET("/vendors/registration-requests", hb.Admin.VendorRequests)
		adm.POST("/vendors/:id/approve", hb.Admin.ApproveVendor)
		adm.POST("/vendors/:id/reject", hb.Admin.RejectVendor)
	}
}

// RegisterVendorRoutes registers the vendor dashboard behind the vendor role.
func RegisterVendorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	vnd := r.Group("/vendor", middleware.RequireRole(models.RoleVendor))
	{
		vnd.GET("/dashboard", hb.Vendor.Dashboard)

		vnd.GET("/tours", hb.Vendor.Tours)
		vnd.POST("/tours", hb.Vendor.CreateTour)
		vnd.PUT("/tours/:id", hb.Vendor.UpdateTour)
		vnd.DELETE("/tours/:id", hb.Vendor.DeleteTour)

		vnd.GET("/vehicles", hb.Vendor.Vehicles)
		vnd.POST("/vehicles", hb.Vendor.CreateVehicle)
		vnd.PUT("/vehicles/:id", hb.Vendor.UpdateVehicle)
		vnd.DELETE("/vehicles/:id", hb.Vendor.DeleteVehicle)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Roamify"})
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

	RegisterPublicRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterVendorRoutes(r, hb)
	RegisterHealthRoute(r)
}
