package user

import (
	"context"

	"stayx/models"
)

// Repository persists user documents keyed by Firebase UID.
type Repository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, uid string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, u *models.User) error
	UpdateRole(ctx context.Context, uid string, role models.Role) error
	List(ctx context.Context, limit int) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
}
