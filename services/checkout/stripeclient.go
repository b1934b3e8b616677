package checkout

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// IntentClient abstracts the Stripe payment-intent calls the service makes.
type IntentClient interface {
	Create(ctx context.Context, amountCents int64, currency, bookingID string) (*stripe.PaymentIntent, error)
	Get(ctx context.Context, intentID string) (*stripe.PaymentIntent, error)
	Cancel(ctx context.Context, intentID string) error
}

// StripeIntentClient is the production IntentClient. The global stripe.Key
// is set at startup.
type StripeIntentClient struct{}

func (StripeIntentClient) Create(ctx context.Context, amountCents int64, currency, bookingID string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("bookingId", bookingID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe intent create failed: %w", err)
	}
	return pi, nil
}

func (StripeIntentClient) Get(ctx context.Context, intentID string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := paymentintent.Get(intentID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe intent fetch failed: %w", err)
	}
	return pi, nil
}

func (StripeIntentClient) Cancel(ctx context.Context, intentID string) error {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx
	if _, err := paymentintent.Cancel(intentID, params); err != nil {
		return fmt.Errorf("stripe intent cancel failed: %w", err)
	}
	return nil
}
