package routes

import (
	"time"

	"stayx/handlers"
	"stayx/middleware"
	"stayx/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers session bootstrap and Google sign-in.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/auth/session", hb.BootstrapHandler)
	r.POST("/api/auth/custom-token", hb.CustomTokenHandler)
	r.GET("/auth/google/callback", hb.GoogleCallbackHandler)
}

// RegisterUserRoutes registers profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.FirebaseAuthMiddleware(hb.AuthClient))
		api.GET("/me", hb.MeHandler)
		api.PUT("/me", hb.UpdateMeHandler)
	}
}

// RegisterPropertyRoutes registers listing endpoints. Reads are public;
// writes require the property-admin role.
func RegisterPropertyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/properties")
	{
		api.GET("/featured", hb.FeaturedPropertiesHandler)

		protected := api.Group("")
		protected.Use(middleware.FirebaseAuthMiddleware(hb.AuthClient))
		protected.Use(middleware.RequireRole(hb.Sessions, models.RolePropertyAdmin, models.RoleSuperAdmin))
		protected.GET("/owner", hb.OwnerPropertiesHandler)
		protected.POST("", hb.CreatePropertyHandler)
		protected.PUT("/:id", hb.UpdatePropertyHandler)
		protected.DELETE("/:id", hb.DeletePropertyHandler)

		// Keep the parameterized read last so it does not shadow /featured.
		api.GET("/:id", hb.GetPropertyHandler)
	}
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.FirebaseAuthMiddleware(hb.AuthClient))
		api.POST("", hb.CreateBookingHandler)
		api.GET("/mine", hb.MyBookingsHandler)
		api.GET("/property/:id",
			middleware.RequireRole(hb.Sessions, models.RolePropertyAdmin, models.RoleSuperAdmin),
			hb.PropertyBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.DELETE("/:id", hb.CancelBookingHandler)
	}
}

// RegisterCheckoutRoutes registers the three payment paths.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/checkout")
	{
		api.Use(middleware.FirebaseAuthMiddleware(hb.AuthClient))
		api.POST("/intent", hb.PaymentIntentHandler)
		api.POST("/confirm", hb.ConfirmCardHandler)
		api.POST("/mobile-money", hb.MobileMoneyHandler)
		api.POST("/cash", hb.CashHandler)
	}
}

// RegisterFavoriteRoutes registers the favorites endpoints.
func RegisterFavoriteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/favorites")
	{
		api.Use(middleware.FirebaseAuthMiddleware(hb.AuthClient))
		api.GET("", hb.ListFavoritesHandler)
		api.POST("/:propertyId", hb.AddFavoriteHandler)
		api.DELETE("/:propertyId", hb.RemoveFavoriteHandler)
	}
}

// RegisterCatalogRoutes registers the public services catalog.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("/active", hb.ActiveServicesHandler)
		api.GET("/coming-soon", hb.ComingSoonServicesHandler)
	}
}

// RegisterAdminRoutes registers super-admin endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.FirebaseAuthMiddleware(hb.AuthClient))
		api.Use(middleware.RequireRole(hb.Sessions, models.RoleSuperAdmin))
		api.GET("/overview", hb.AdminOverviewHandler)
		api.GET("/users", hb.AdminUsersHandler)
		api.GET("/transactions", hb.AdminTransactionsHandler)
		api.PUT("/users/:id/role", hb.AdminUpdateRoleHandler)
		api.PUT("/services", hb.UpsertServiceHandler)
		api.DELETE("/services/:id", hb.DeleteServiceHandler)
	}
}

// RegisterUploadRoutes registers the image upload endpoint.
func RegisterUploadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/uploads")
	{
		api.Use(middleware.FirebaseAuthMiddleware(hb.AuthClient))
		api.Use(middleware.RequireRole(hb.Sessions, models.RolePropertyAdmin, models.RoleSuperAdmin))
		api.POST("", hb.UploadHandler)
	}
}

// RegisterStatusRoute registers the health-check endpoint.
func RegisterStatusRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/status", hb.StatusHandler)
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

	RegisterStatusRoute(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterPropertyRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterFavoriteRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterUploadRoutes(r, hb)
}
