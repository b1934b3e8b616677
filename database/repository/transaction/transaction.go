package transaction

import (
	"context"

	"stayx/models"
)

// Repository persists transaction documents. Transactions are written once
// and never mutated.
type Repository interface {
	Create(ctx context.Context, t *models.Transaction) error
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	ListByBooking(ctx context.Context, bookingID string) ([]models.Transaction, error)
	List(ctx context.Context, limit int) ([]models.Transaction, error)
	Count(ctx context.Context) (int64, error)
}
