package favorite

import (
	"context"
	"fmt"
	"time"

	"stayx/models"

	"cloud.google.com/go/firestore"
)

const favoritesCollection = "favorites"

// FirestoreFavoriteRepo implements Repository on Firestore. The document ID
// is derived from user and property so duplicate adds collapse naturally.
type FirestoreFavoriteRepo struct {
	client *firestore.Client
}

// NewFirestoreFavoriteRepo creates a Firestore-backed favorite repository.
func NewFirestoreFavoriteRepo(client *firestore.Client) *FirestoreFavoriteRepo {
	return &FirestoreFavoriteRepo{client: client}
}

func (r *FirestoreFavoriteRepo) col() *firestore.CollectionRef {
	return r.client.Collection(favoritesCollection)
}

func docID(userID, propertyID string) string {
	return userID + "_" + propertyID
}

func (r *FirestoreFavoriteRepo) Add(ctx context.Context, f *models.Favorite) error {
	f.ID = docID(f.UserID, f.PropertyID)
	f.CreatedAt = time.Now()
	// Set rather than Create: adding an existing favorite is a no-op.
	if _, err := r.col().Doc(f.ID).Set(ctx, f); err != nil {
		return fmt.Errorf("failed to add favorite %q: %w", f.ID, err)
	}
	return nil
}

func (r *FirestoreFavoriteRepo) Remove(ctx context.Context, userID, propertyID string) error {
	if _, err := r.col().Doc(docID(userID, propertyID)).Delete(ctx); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

func (r *FirestoreFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	snaps, err := r.col().Where("userId", "==", userID).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	favs := make([]models.Favorite, 0, len(snaps))
	for _, snap := range snaps {
		var f models.Favorite
		if err := snap.DataTo(&f); err != nil {
			return nil, fmt.Errorf("failed to decode favorite %q: %w", snap.Ref.ID, err)
		}
		f.ID = snap.Ref.ID
		favs = append(favs, f)
	}
	return favs, nil
}

func (r *FirestoreFavoriteRepo) Exists(ctx context.Context, userID, propertyID string) (bool, error) {
	_, err := r.col().Doc(docID(userID, propertyID)).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return true, nil
}
