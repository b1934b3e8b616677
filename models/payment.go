// File: stayx/models/payment.go
package models

// PaymentIntentRequest asks for a Stripe payment intent for a booking.
type PaymentIntentRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
}

// PaymentIntentResponse carries the client secret back to the caller.
type PaymentIntentResponse struct {
	BookingID       string  `json:"bookingId"`
	PaymentIntentID string  `json:"paymentIntentId"`
	ClientSecret    string  `json:"clientSecret"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
}

// ConfirmCardRequest finalizes a card payment after intent confirmation.
type ConfirmCardRequest struct {
	BookingID       string `json:"bookingId" binding:"required"`
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
}

// MobileMoneyRequest records a manual mobile-money payment. The transaction
// reference and phone number are stored verbatim.
type MobileMoneyRequest struct {
	BookingID      string `json:"bookingId" binding:"required"`
	TransactionRef string `json:"transactionRef" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
}

// CashRequest records a cash-on-arrival payment with the chosen arrival bucket.
type CashRequest struct {
	BookingID     string `json:"bookingId" binding:"required"`
	ArrivalWindow string `json:"arrivalWindow" binding:"required,oneof=morning afternoon evening"`
}

// CheckoutResult is returned by every checkout path.
type CheckoutResult struct {
	Booking     *Booking     `json:"booking"`
	Transaction *Transaction `json:"transaction"`
}
