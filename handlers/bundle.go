package handlers

import (
	"stayx/services/session"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	AuthClient *auth.Client
	Sessions   session.Service

	// Status
	StatusHandler gin.HandlerFunc

	// Auth endpoints
	BootstrapHandler      gin.HandlerFunc
	CustomTokenHandler    gin.HandlerFunc
	GoogleCallbackHandler gin.HandlerFunc

	// User endpoints
	MeHandler       gin.HandlerFunc
	UpdateMeHandler gin.HandlerFunc

	// Property endpoints
	FeaturedPropertiesHandler gin.HandlerFunc
	GetPropertyHandler        gin.HandlerFunc
	OwnerPropertiesHandler    gin.HandlerFunc
	CreatePropertyHandler     gin.HandlerFunc
	UpdatePropertyHandler     gin.HandlerFunc
	DeletePropertyHandler     gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler    gin.HandlerFunc
	MyBookingsHandler       gin.HandlerFunc
	GetBookingHandler       gin.HandlerFunc
	PropertyBookingsHandler gin.HandlerFunc
	CancelBookingHandler    gin.HandlerFunc

	// Checkout endpoints
	PaymentIntentHandler gin.HandlerFunc
	ConfirmCardHandler   gin.HandlerFunc
	MobileMoneyHandler   gin.HandlerFunc
	CashHandler          gin.HandlerFunc

	// Favorites endpoints
	AddFavoriteHandler    gin.HandlerFunc
	RemoveFavoriteHandler gin.HandlerFunc
	ListFavoritesHandler  gin.HandlerFunc

	// Services catalog endpoints
	ActiveServicesHandler     gin.HandlerFunc
	ComingSoonServicesHandler gin.HandlerFunc
	UpsertServiceHandler      gin.HandlerFunc
	DeleteServiceHandler      gin.HandlerFunc

	// Admin endpoints
	AdminOverviewHandler     gin.HandlerFunc
	AdminUsersHandler        gin.HandlerFunc
	AdminTransactionsHandler gin.HandlerFunc
	AdminUpdateRoleHandler   gin.HandlerFunc

	// Uploads
	UploadHandler gin.HandlerFunc
}
