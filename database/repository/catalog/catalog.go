package catalog

import (
	"context"

	"stayx/models"
)

// Repository persists service catalog offerings.
type Repository interface {
	Upsert(ctx context.Context, s *models.ServiceOffering) error
	Delete(ctx context.Context, id string) error
	ListByStatus(ctx context.Context, status models.OfferingStatus) ([]models.ServiceOffering, error)
}
