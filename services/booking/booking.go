package booking

import (
	"context"
	"fmt"
	"math"
	"time"

	"stayx/models"
	"stayx/services/property"
	"stayx/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultBookingService) Create(ctx context.Context, userID string, in models.BookingInput) (*models.Booking, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	prop, err := s.Properties.GetByID(ctx, in.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load property %q: %w", in.PropertyID, err)
	}

	overlapping, err := s.Bookings.ConfirmedOverlapping(ctx, in.PropertyID, in.CheckInDate, in.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("availability check failed: %w", err)
	}
	if len(overlapping) > 0 {
		return nil, ErrDatesUnavailable
	}

	b := &models.Booking{
		ID:           uuid.New().String(),
		PropertyID:   prop.ID,
		UserID:       userID,
		CheckInDate:  in.CheckInDate,
		CheckOutDate: in.CheckOutDate,
		TotalPrice:   TotalPrice(prop.Price, in.CheckInDate, in.CheckOutDate),
		Status:       models.BookingPending,
	}
	if err := s.Bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	utils.GetLogger().Info("booking created",
		zap.String("booking", b.ID), zap.String("property", prop.ID), zap.String("user", userID))
	return b, nil
}

// TotalPrice charges the nightly rate per started night of the half-open
// stay range.
func TotalPrice(nightly float64, in, out time.Time) float64 {
	nights := math.Ceil(out.Sub(in).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return math.Round(nightly*nights*100) / 100
}

func (s *DefaultBookingService) GetForUser(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrNotBookingOwner
	}
	return b, nil
}

func (s *DefaultBookingService) ListMine(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Bookings.ListByUser(ctx, userID)
}

func (s *DefaultBookingService) ListForProperty(ctx context.Context, actor *models.AuthSnapshot, propertyID string) ([]models.Booking, error) {
	prop, err := s.Properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load property %q: %w", propertyID, err)
	}
	if actor.Role != models.RoleSuperAdmin && prop.OwnerID != actor.UID {
		return nil, property.ErrNotPropertyOwner
	}
	return s.Bookings.ListByProperty(ctx, propertyID)
}

func (s *DefaultBookingService) Cancel(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	b, err := s.GetForUser(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status == models.BookingCancelled {
		return b, nil
	}
	if b.Status != models.BookingPending {
		return nil, ErrNotCancellable
	}
	b.Status = models.BookingCancelled
	if err := s.Bookings.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to cancel booking %q: %w", bookingID, err)
	}
	return b, nil
}
