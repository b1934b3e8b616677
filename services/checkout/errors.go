package checkout

import "errors"

var (
	// ErrDuplicateConfirmation means the payment intent was already used to
	// confirm a booking. At most one confirmation side effect happens per
	// intent.
	ErrDuplicateConfirmation = errors.New("payment intent already confirmed")

	// ErrBookingNotPayable means the booking is not in a state that accepts
	// a payment (already confirmed or cancelled).
	ErrBookingNotPayable = errors.New("booking is not payable")

	// ErrNotBookingOwner means the caller does not own the booking.
	ErrNotBookingOwner = errors.New("booking belongs to another user")

	// ErrIntentMismatch means the supplied payment intent is not the one
	// attached to the booking.
	ErrIntentMismatch = errors.New("payment intent does not match booking")

	// ErrIntentNotSucceeded means Stripe reports the intent as not paid.
	ErrIntentNotSucceeded = errors.New("payment intent has not succeeded")
)
