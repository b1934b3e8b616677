package cron

import (
	"context"
	"time"

	bookingRepo "stayx/database/repository/booking"
	"stayx/services/checkout"
	"stayx/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Reconciler periodically settles card bookings left pending with a payment
// intent attached. It is the server-side source of truth for abandoned
// intents: succeeded intents get their one confirmation side effect,
// canceled intents release the booking.
type Reconciler struct {
	Bookings bookingRepo.Repository
	Checkout checkout.Service
	// Spec is a cron spec, e.g. "@every 5m".
	Spec string
	// Cutoff is how old a pending booking must be before it is swept.
	Cutoff time.Duration
}

// Start registers the sweep and launches the cron scheduler. The returned
// cron can be stopped on shutdown.
func (r *Reconciler) Start() (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(r.Spec, r.Sweep); err != nil {
		return nil, err
	}
	c.Start()
	utils.GetLogger().Info("payment reconciler started", zap.String("spec", r.Spec))
	return c, nil
}

// Sweep runs one reconciliation pass.
func (r *Reconciler) Sweep() {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	stale, err := r.Bookings.StalePendingCard(ctx, time.Now().Add(-r.Cutoff))
	if err != nil {
		logger.Error("reconciler: failed to list stale bookings", zap.Error(err))
		return
	}
	if len(stale) == 0 {
		return
	}

	logger.Info("reconciler: sweeping stale card bookings", zap.Int("count", len(stale)))
	for i := range stale {
		b := stale[i]
		if err := r.Checkout.SettleIntent(ctx, &b); err != nil {
			logger.Error("reconciler: failed to settle booking",
				zap.String("booking", b.ID), zap.String("intent", b.PaymentIntentID), zap.Error(err))
		}
	}
}
