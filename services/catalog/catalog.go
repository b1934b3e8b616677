package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "stayx/database/repository/catalog"
	"stayx/models"

	"github.com/google/uuid"
)

// Service exposes the services catalog.
type Service interface {
	ListActive(ctx context.Context) ([]models.ServiceOffering, error)
	ListComingSoon(ctx context.Context) ([]models.ServiceOffering, error)
	Upsert(ctx context.Context, s *models.ServiceOffering) (*models.ServiceOffering, error)
	Delete(ctx context.Context, id string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo catalogRepo.Repository
}

func (s *DefaultCatalogService) ListActive(ctx context.Context) ([]models.ServiceOffering, error) {
	return s.Repo.ListByStatus(ctx, models.OfferingActive)
}

func (s *DefaultCatalogService) ListComingSoon(ctx context.Context) ([]models.ServiceOffering, error) {
	return s.Repo.ListByStatus(ctx, models.OfferingComingSoon)
}

func (s *DefaultCatalogService) Upsert(ctx context.Context, offering *models.ServiceOffering) (*models.ServiceOffering, error) {
	if offering.Name == "" {
		return nil, errors.New("offering name is required")
	}
	switch offering.Status {
	case models.OfferingActive, models.OfferingComingSoon:
	default:
		return nil, fmt.Errorf("unknown offering status %q", offering.Status)
	}
	if offering.ID == "" {
		offering.ID = uuid.New().String()
	}
	if err := s.Repo.Upsert(ctx, offering); err != nil {
		return nil, err
	}
	return offering, nil
}

func (s *DefaultCatalogService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
