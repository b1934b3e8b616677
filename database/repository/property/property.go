package property

import (
	"context"

	"stayx/models"
)

// Repository persists property documents.
type Repository interface {
	Create(ctx context.Context, p *models.Property) error
	GetByID(ctx context.Context, id string) (*models.Property, error)
	Update(ctx context.Context, p *models.Property) error
	Delete(ctx context.Context, id string) error
	ListFeatured(ctx context.Context, limit int) ([]models.Property, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Property, error)
	Count(ctx context.Context) (int64, error)
}
