package checkout

import (
	"context"
	"errors"
	"fmt"

	"stayx/database/repository"
	bookingRepo "stayx/database/repository/booking"
	txRepo "stayx/database/repository/transaction"
	"stayx/models"
	"stayx/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// DefaultCheckoutService is the production implementation.
type DefaultCheckoutService struct {
	Bookings     bookingRepo.Repository
	Transactions txRepo.Repository
	Intents      IntentClient
	Dedupe       DedupeStore
	Reminders    Reminders // optional
	Currency     string
}

func (s *DefaultCheckoutService) CreateIntent(ctx context.Context, userID, bookingID string) (*models.PaymentIntentResponse, error) {
	b, err := s.payableBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	// A replaced intent would stay live at Stripe while detached from any
	// booking; cancel it before attaching a new one.
	if b.PaymentIntentID != "" {
		if err := s.Intents.Cancel(ctx, b.PaymentIntentID); err != nil {
			utils.GetLogger().Warn("failed to cancel superseded intent",
				zap.String("booking", b.ID), zap.String("intent", b.PaymentIntentID), zap.Error(err))
		}
	}

	pi, err := s.Intents.Create(ctx, amountCents(b.TotalPrice), s.Currency, b.ID)
	if err != nil {
		return nil, err
	}

	b.PaymentMethod = models.PaymentCard
	b.PaymentIntentID = pi.ID
	if err := s.Bookings.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to attach intent to booking: %w", err)
	}

	return &models.PaymentIntentResponse{
		BookingID:       b.ID,
		PaymentIntentID: pi.ID,
		ClientSecret:    pi.ClientSecret,
		Amount:          b.TotalPrice,
		Currency:        s.Currency,
	}, nil
}

func (s *DefaultCheckoutService) ConfirmCard(ctx context.Context, userID string, req models.ConfirmCardRequest) (*models.CheckoutResult, error) {
	b, err := s.payableBooking(ctx, userID, req.BookingID)
	if err != nil {
		return nil, err
	}
	if b.PaymentIntentID == "" || b.PaymentIntentID != req.PaymentIntentID {
		return nil, ErrIntentMismatch
	}

	// Never trust the client's word that the charge went through.
	pi, err := s.Intents.Get(ctx, b.PaymentIntentID)
	if err != nil {
		return nil, err
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, ErrIntentNotSucceeded
	}

	return s.finalizeCardPayment(ctx, b)
}

// finalizeCardPayment applies the single confirmation side effect for a
// succeeded intent: one transaction write plus the status flip, guarded by
// the dedupe key.
func (s *DefaultCheckoutService) finalizeCardPayment(ctx context.Context, b *models.Booking) (*models.CheckoutResult, error) {
	ok, err := s.Dedupe.Reserve(ctx, b.PaymentIntentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDuplicateConfirmation
	}

	result, err := s.settle(ctx, b, models.BookingConfirmed, models.TransactionCompleted, b.PaymentIntentID)
	if err != nil {
		// Free the key so a retry can settle once the underlying fault clears.
		if rerr := s.Dedupe.Release(ctx, b.PaymentIntentID); rerr != nil {
			utils.GetLogger().Error("failed to release dedupe key",
				zap.String("intent", b.PaymentIntentID), zap.Error(rerr))
		}
		return nil, err
	}

	utils.GetLogger().Info("card payment finalized",
		zap.String("booking", b.ID), zap.String("intent", b.PaymentIntentID))
	return result, nil
}

func (s *DefaultCheckoutService) MobileMoney(ctx context.Context, userID string, req models.MobileMoneyRequest) (*models.CheckoutResult, error) {
	b, err := s.payableBooking(ctx, userID, req.BookingID)
	if err != nil {
		return nil, err
	}

	b.PaymentMethod = models.PaymentMobileMoney
	b.TransactionRef = req.TransactionRef
	b.PayerPhone = req.Phone

	result, err := s.settle(ctx, b, models.BookingConfirmed, models.TransactionCompleted, req.TransactionRef)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("mobile-money payment recorded",
		zap.String("booking", b.ID), zap.String("ref", req.TransactionRef))
	return result, nil
}

func (s *DefaultCheckoutService) Cash(ctx context.Context, userID string, req models.CashRequest) (*models.CheckoutResult, error) {
	b, err := s.payableBooking(ctx, userID, req.BookingID)
	if err != nil {
		return nil, err
	}

	// Cash bookings stay pending and payable; the recorded method marks a
	// resubmitted form so it cannot write a second pending transaction.
	if b.PaymentMethod == models.PaymentCash {
		return nil, ErrDuplicateConfirmation
	}

	b.PaymentMethod = models.PaymentCash
	b.ArrivalWindow = req.ArrivalWindow

	result, err := s.settle(ctx, b, models.BookingPending, models.TransactionPending, "")
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("cash payment recorded",
		zap.String("booking", b.ID), zap.String("arrivalWindow", req.ArrivalWindow))
	return result, nil
}

func (s *DefaultCheckoutService) SettleIntent(ctx context.Context, b *models.Booking) error {
	pi, err := s.Intents.Get(ctx, b.PaymentIntentID)
	if err != nil {
		return err
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		_, err := s.finalizeCardPayment(ctx, b)
		if err == ErrDuplicateConfirmation {
			// A client confirmation landed between the query and here.
			return nil
		}
		return err
	case stripe.PaymentIntentStatusCanceled:
		b.Status = models.BookingCancelled
		if err := s.Bookings.Update(ctx, b); err != nil {
			return fmt.Errorf("failed to cancel stale booking: %w", err)
		}
		utils.GetLogger().Info("cancelled booking with canceled intent",
			zap.String("booking", b.ID), zap.String("intent", b.PaymentIntentID))
		return nil
	default:
		// Still in flight; leave it for the next sweep.
		return nil
	}
}

// payableBooking loads a booking and checks ownership and state.
func (s *DefaultCheckoutService) payableBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrNotBookingOwner
	}
	if b.Status != models.BookingPending {
		return nil, ErrBookingNotPayable
	}
	return b, nil
}

// settle writes the transaction with the server-computed fee split, updates
// the booking status, and schedules a reminder for confirmed bookings.
//
// Referenced payments get a transaction ID derived from the reference, so a
// retry after a partial failure collides on the Firestore Create instead of
// writing a second transaction for the same payment.
func (s *DefaultCheckoutService) settle(ctx context.Context, b *models.Booking, bookingStatus models.BookingStatus, txStatus models.TransactionStatus, reference string) (*models.CheckoutResult, error) {
	txID := uuid.New().String()
	if reference != "" {
		txID = "tx_" + reference
	}

	fee, owner := SplitAmount(b.TotalPrice)
	tx := &models.Transaction{
		ID:            txID,
		BookingID:     b.ID,
		Amount:        b.TotalPrice,
		PlatformFee:   fee,
		OwnerAmount:   owner,
		PaymentMethod: b.PaymentMethod,
		Status:        txStatus,
		Reference:     reference,
	}
	if err := s.Transactions.Create(ctx, tx); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			// A previous attempt wrote the transaction but failed before the
			// booking update landed; reuse it and finish the flip.
			existing, gerr := s.Transactions.GetByID(ctx, txID)
			if gerr != nil {
				return nil, fmt.Errorf("failed to load transaction %q: %w", txID, gerr)
			}
			tx = existing
		} else {
			return nil, fmt.Errorf("failed to write transaction: %w", err)
		}
	}

	b.Status = bookingStatus
	if err := s.Bookings.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to update booking %q: %w", b.ID, err)
	}

	if bookingStatus == models.BookingConfirmed && s.Reminders != nil {
		if err := s.Reminders.ScheduleCheckInReminder(ctx, b); err != nil {
			utils.GetLogger().Warn("failed to schedule check-in reminder",
				zap.String("booking", b.ID), zap.Error(err))
		}
	}

	return &models.CheckoutResult{Booking: b, Transaction: tx}, nil
}
