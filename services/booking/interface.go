package booking

import (
	"context"

	bookingRepo "stayx/database/repository/booking"
	propertyRepo "stayx/database/repository/property"
	"stayx/models"
)

// Service manages the booking lifecycle outside of payment.
type Service interface {
	// Create validates dates, rejects overlaps with confirmed bookings and
	// creates a pending booking priced from the property's nightly rate.
	Create(ctx context.Context, userID string, in models.BookingInput) (*models.Booking, error)

	GetForUser(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	ListMine(ctx context.Context, userID string) ([]models.Booking, error)

	// ListForProperty returns the bookings of a property for its owner. A
	// super admin may list any property's bookings.
	ListForProperty(ctx context.Context, actor *models.AuthSnapshot, propertyID string) ([]models.Booking, error)

	// Cancel cancels a pending booking owned by userID.
	Cancel(ctx context.Context, userID, bookingID string) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings   bookingRepo.Repository
	Properties propertyRepo.Repository
}
