// File: stayx/models/transaction.go
package models

import "time"

// TransactionStatus tracks the outcome of a payment attempt.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

// Transaction mirrors a transactions/{id} document. Exactly one transaction
// is written per completed or attempted payment; the fee split is computed
// server-side.
type Transaction struct {
	ID            string            `firestore:"id" json:"id"`
	BookingID     string            `firestore:"bookingId" json:"bookingId"`
	Amount        float64           `firestore:"amount" json:"amount"`
	PlatformFee   float64           `firestore:"platformFee" json:"platformFee"`
	OwnerAmount   float64           `firestore:"ownerAmount" json:"ownerAmount"`
	PaymentMethod PaymentMethod     `firestore:"paymentMethod" json:"paymentMethod"`
	Status        TransactionStatus `firestore:"status" json:"status"`
	Reference     string            `firestore:"reference,omitempty" json:"reference,omitempty"`
	CreatedAt     time.Time         `firestore:"createdAt" json:"createdAt"`
}
