package favorite

import (
	"context"

	"stayx/models"
)

// Repository persists favorite documents.
type Repository interface {
	Add(ctx context.Context, f *models.Favorite) error
	Remove(ctx context.Context, userID, propertyID string) error
	ListByUser(ctx context.Context, userID string) ([]models.Favorite, error)
	Exists(ctx context.Context, userID, propertyID string) (bool, error)
}
