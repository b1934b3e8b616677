package property

import (
	"context"
	"testing"

	"stayx/database/repository"
	"stayx/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	props map[string]*models.Property
}

func newFakeRepo(ps ...*models.Property) *fakeRepo {
	r := &fakeRepo{props: map[string]*models.Property{}}
	for _, p := range ps {
		clone := *p
		r.props[p.ID] = &clone
	}
	return r
}

func (r *fakeRepo) Create(ctx context.Context, p *models.Property) error {
	clone := *p
	r.props[p.ID] = &clone
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	p, ok := r.props[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakeRepo) Update(ctx context.Context, p *models.Property) error {
	clone := *p
	r.props[p.ID] = &clone
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	delete(r.props, id)
	return nil
}

func (r *fakeRepo) ListFeatured(ctx context.Context, limit int) ([]models.Property, error) {
	var out []models.Property
	for _, p := range r.props {
		if p.Featured {
			out = append(out, *p)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Property, error) {
	var out []models.Property
	for _, p := range r.props {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.props)), nil
}

func validInput() models.PropertyInput {
	return models.PropertyInput{
		Name:     "Garden Cottage",
		Location: "Naivasha",
		Price:    85.00,
		Beds:     2,
		Baths:    1,
	}
}

func TestCreateAssignsOwner(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultPropertyService{Repo: repo}

	p, err := svc.Create(context.Background(), "owner-1", validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "owner-1", p.OwnerID)

	stored, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Garden Cottage", stored.Name)
}

func TestUpdateOwnership(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo(&models.Property{ID: "prop-1", OwnerID: "owner-1", Name: "Old Name", Price: 50})
	svc := &DefaultPropertyService{Repo: repo}

	in := validInput()

	_, err := svc.Update(ctx, &models.AuthSnapshot{UID: "intruder", Role: models.RolePropertyAdmin}, "prop-1", in)
	assert.ErrorIs(t, err, ErrNotPropertyOwner)

	p, err := svc.Update(ctx, &models.AuthSnapshot{UID: "owner-1", Role: models.RolePropertyAdmin}, "prop-1", in)
	require.NoError(t, err)
	assert.Equal(t, "Garden Cottage", p.Name)
	assert.Equal(t, 85.00, p.Price)

	// A super admin may edit any listing.
	_, err = svc.Update(ctx, &models.AuthSnapshot{UID: "admin", Role: models.RoleSuperAdmin}, "prop-1", in)
	assert.NoError(t, err)
}

func TestDeleteOwnership(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo(&models.Property{ID: "prop-1", OwnerID: "owner-1"})
	svc := &DefaultPropertyService{Repo: repo}

	err := svc.Delete(ctx, &models.AuthSnapshot{UID: "intruder", Role: models.RolePropertyAdmin}, "prop-1")
	assert.ErrorIs(t, err, ErrNotPropertyOwner)

	err = svc.Delete(ctx, &models.AuthSnapshot{UID: "owner-1", Role: models.RolePropertyAdmin}, "prop-1")
	require.NoError(t, err)

	_, err = svc.Get(ctx, "prop-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
