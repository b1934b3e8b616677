package property

import (
	"context"
	"errors"
	"fmt"

	propertyRepo "stayx/database/repository/property"
	"stayx/models"
	"stayx/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotPropertyOwner means the caller does not own the property.
var ErrNotPropertyOwner = errors.New("property belongs to another owner")

// Service manages property listings.
type Service interface {
	Create(ctx context.Context, ownerID string, in models.PropertyInput) (*models.Property, error)
	Get(ctx context.Context, id string) (*models.Property, error)
	Update(ctx context.Context, actor *models.AuthSnapshot, id string, in models.PropertyInput) (*models.Property, error)
	Delete(ctx context.Context, actor *models.AuthSnapshot, id string) error
	ListFeatured(ctx context.Context, limit int) ([]models.Property, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Property, error)
}

// DefaultPropertyService is the production implementation.
type DefaultPropertyService struct {
	Repo propertyRepo.Repository
}

func (s *DefaultPropertyService) Create(ctx context.Context, ownerID string, in models.PropertyInput) (*models.Property, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p := &models.Property{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Location:    in.Location,
		Price:       in.Price,
		Beds:        in.Beds,
		Baths:       in.Baths,
		Size:        in.Size,
		ImageURL:    in.ImageURL,
		Featured:    in.Featured,
		OwnerID:     ownerID,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	utils.GetLogger().Info("property created", zap.String("property", p.ID), zap.String("owner", ownerID))
	return p, nil
}

func (s *DefaultPropertyService) Get(ctx context.Context, id string) (*models.Property, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultPropertyService) Update(ctx context.Context, actor *models.AuthSnapshot, id string, in models.PropertyInput) (*models.Property, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p, err := s.ownedProperty(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	p.Name = in.Name
	p.Description = in.Description
	p.Location = in.Location
	p.Price = in.Price
	p.Beds = in.Beds
	p.Baths = in.Baths
	p.Size = in.Size
	p.ImageURL = in.ImageURL
	p.Featured = in.Featured

	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update property %q: %w", id, err)
	}
	return p, nil
}

func (s *DefaultPropertyService) Delete(ctx context.Context, actor *models.AuthSnapshot, id string) error {
	if _, err := s.ownedProperty(ctx, actor, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	utils.GetLogger().Info("property deleted", zap.String("property", id), zap.String("actor", actor.UID))
	return nil
}

func (s *DefaultPropertyService) ListFeatured(ctx context.Context, limit int) ([]models.Property, error) {
	return s.Repo.ListFeatured(ctx, limit)
}

func (s *DefaultPropertyService) ListByOwner(ctx context.Context, ownerID string) ([]models.Property, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

// ownedProperty loads a property and checks that the actor owns it. A super
// admin may act on any property.
func (s *DefaultPropertyService) ownedProperty(ctx context.Context, actor *models.AuthSnapshot, id string) (*models.Property, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleSuperAdmin && p.OwnerID != actor.UID {
		return nil, ErrNotPropertyOwner
	}
	return p, nil
}
