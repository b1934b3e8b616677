package booking

import (
	"context"
	"time"

	"stayx/models"
)

// Repository persists booking documents.
type Repository interface {
	Create(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Update(ctx context.Context, b *models.Booking) error
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListByProperty(ctx context.Context, propertyID string) ([]models.Booking, error)
	// ConfirmedOverlapping returns confirmed bookings for propertyID whose
	// half-open [checkIn, checkOut) range intersects [in, out).
	ConfirmedOverlapping(ctx context.Context, propertyID string, in, out time.Time) ([]models.Booking, error)
	// StalePendingCard returns card bookings still pending with a payment
	// intent attached, created before the cutoff.
	StalePendingCard(ctx context.Context, cutoff time.Time) ([]models.Booking, error)
	Count(ctx context.Context) (int64, error)
}
