// File: stayx/models/booking.go
package models

import (
	"errors"
	"time"
)

// BookingStatus is the lifecycle tag on a booking document.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// PaymentMethod identifies one of the three checkout paths.
type PaymentMethod string

const (
	PaymentCard        PaymentMethod = "card"
	PaymentMobileMoney PaymentMethod = "mobile_money"
	PaymentCash        PaymentMethod = "cash"
)

// Booking mirrors a bookings/{id} document.
//
// Date ranges are half-open: [CheckInDate, CheckOutDate). Two bookings for
// the same property overlap when their half-open ranges intersect.
type Booking struct {
	ID              string        `firestore:"id" json:"id"`
	PropertyID      string        `firestore:"propertyId" json:"propertyId"`
	UserID          string        `firestore:"userId" json:"userId"`
	CheckInDate     time.Time     `firestore:"checkInDate" json:"checkInDate"`
	CheckOutDate    time.Time     `firestore:"checkOutDate" json:"checkOutDate"`
	TotalPrice      float64       `firestore:"totalPrice" json:"totalPrice"`
	Status          BookingStatus `firestore:"status" json:"status"`
	PaymentMethod   PaymentMethod `firestore:"paymentMethod" json:"paymentMethod"`
	PaymentIntentID string        `firestore:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	TransactionRef  string        `firestore:"transactionRef,omitempty" json:"transactionRef,omitempty"`
	PayerPhone      string        `firestore:"payerPhone,omitempty" json:"payerPhone,omitempty"`
	ArrivalWindow   string        `firestore:"arrivalWindow,omitempty" json:"arrivalWindow,omitempty"`
	CreatedAt       time.Time     `firestore:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `firestore:"updatedAt" json:"updatedAt"`
}

// Overlaps reports whether b and the range [in, out) intersect.
func (b Booking) Overlaps(in, out time.Time) bool {
	return b.CheckInDate.Before(out) && in.Before(b.CheckOutDate)
}

// BookingInput is the payload for creating a booking.
type BookingInput struct {
	PropertyID   string    `json:"propertyId" binding:"required"`
	CheckInDate  time.Time `json:"checkInDate" binding:"required"`
	CheckOutDate time.Time `json:"checkOutDate" binding:"required"`
}

// Validate enforces date ordering.
func (b BookingInput) Validate() error {
	if !b.CheckInDate.Before(b.CheckOutDate) {
		return errors.New("check-in date must be before check-out date")
	}
	return nil
}
