package checkout

import (
	"context"

	"stayx/models"
)

// Service runs the three checkout paths and the reconciliation hooks.
type Service interface {
	// CreateIntent creates a Stripe payment intent for the caller's pending
	// booking and attaches its ID to the booking document.
	CreateIntent(ctx context.Context, userID, bookingID string) (*models.PaymentIntentResponse, error)

	// ConfirmCard finalizes a card payment after the client confirmed the
	// intent. The operation is idempotent per payment intent ID.
	ConfirmCard(ctx context.Context, userID string, req models.ConfirmCardRequest) (*models.CheckoutResult, error)

	// MobileMoney records a manual mobile-money payment and confirms the
	// booking. Reference and phone are stored verbatim.
	MobileMoney(ctx context.Context, userID string, req models.MobileMoneyRequest) (*models.CheckoutResult, error)

	// Cash records a cash-on-arrival payment; the booking stays pending
	// until manual review.
	Cash(ctx context.Context, userID string, req models.CashRequest) (*models.CheckoutResult, error)

	// SettleIntent is the reconciler entry point: it finalizes or cancels a
	// stale pending card booking according to the intent state at Stripe.
	SettleIntent(ctx context.Context, b *models.Booking) error
}

// Reminders schedules check-in reminders for confirmed bookings.
type Reminders interface {
	ScheduleCheckInReminder(ctx context.Context, b *models.Booking) error
}
