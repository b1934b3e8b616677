package booking

import "errors"

var (
	// ErrDatesUnavailable means a confirmed booking already covers part of
	// the requested date range.
	ErrDatesUnavailable = errors.New("property is not available for the requested dates")

	// ErrNotBookingOwner means the caller does not own the booking.
	ErrNotBookingOwner = errors.New("booking belongs to another user")

	// ErrNotCancellable means the booking cannot be cancelled in its
	// current state.
	ErrNotCancellable = errors.New("booking cannot be cancelled")
)
