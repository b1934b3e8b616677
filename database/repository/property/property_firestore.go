package property

import (
	"context"
	"fmt"
	"time"

	"stayx/database/repository"
	"stayx/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const propertiesCollection = "properties"

// FirestorePropertyRepo implements Repository on Firestore.
type FirestorePropertyRepo struct {
	client *firestore.Client
}

// NewFirestorePropertyRepo creates a Firestore-backed property repository.
func NewFirestorePropertyRepo(client *firestore.Client) *FirestorePropertyRepo {
	return &FirestorePropertyRepo{client: client}
}

func (r *FirestorePropertyRepo) col() *firestore.CollectionRef {
	return r.client.Collection(propertiesCollection)
}

func (r *FirestorePropertyRepo) Create(ctx context.Context, p *models.Property) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := r.col().Doc(p.ID).Create(ctx, p); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return repository.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create property %q: %w", p.ID, err)
	}
	return nil
}

func (r *FirestorePropertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get property %q: %w", id, err)
	}
	var p models.Property
	if err := snap.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to decode property %q: %w", id, err)
	}
	p.ID = snap.Ref.ID
	return &p, nil
}

func (r *FirestorePropertyRepo) Update(ctx context.Context, p *models.Property) error {
	p.UpdatedAt = time.Now()
	if _, err := r.col().Doc(p.ID).Set(ctx, p); err != nil {
		return fmt.Errorf("failed to update property %q: %w", p.ID, err)
	}
	return nil
}

func (r *FirestorePropertyRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete property %q: %w", id, err)
	}
	return nil
}

func (r *FirestorePropertyRepo) ListFeatured(ctx context.Context, limit int) ([]models.Property, error) {
	q := r.col().Where("featured", "==", true)
	if limit > 0 {
		q = q.Limit(limit)
	}
	return r.collect(ctx, q)
}

func (r *FirestorePropertyRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Property, error) {
	return r.collect(ctx, r.col().Where("ownerId", "==", ownerID))
}

func (r *FirestorePropertyRepo) Count(ctx context.Context) (int64, error) {
	refs, err := r.col().Select().Documents(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}
	return int64(len(refs)), nil
}

func (r *FirestorePropertyRepo) collect(ctx context.Context, q firestore.Query) ([]models.Property, error) {
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	props := make([]models.Property, 0, len(snaps))
	for _, snap := range snaps {
		var p models.Property
		if err := snap.DataTo(&p); err != nil {
			return nil, fmt.Errorf("failed to decode property %q: %w", snap.Ref.ID, err)
		}
		p.ID = snap.Ref.ID
		props = append(props, p)
	}
	return props, nil
}
