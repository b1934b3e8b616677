package user

import (
	"context"
	"fmt"
	"time"

	"stayx/database/repository"
	"stayx/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const usersCollection = "users"

// FirestoreUserRepo implements Repository on Firestore. The document ID is
// the Firebase Auth UID.
type FirestoreUserRepo struct {
	client *firestore.Client
}

// NewFirestoreUserRepo creates a Firestore-backed user repository.
func NewFirestoreUserRepo(client *firestore.Client) *FirestoreUserRepo {
	return &FirestoreUserRepo{client: client}
}

func (r *FirestoreUserRepo) col() *firestore.CollectionRef {
	return r.client.Collection(usersCollection)
}

func (r *FirestoreUserRepo) Create(ctx context.Context, u *models.User) error {
	if u.UID == "" {
		return fmt.Errorf("user uid is required")
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	if _, err := r.col().Doc(u.UID).Create(ctx, u); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return repository.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create user %q: %w", u.UID, err)
	}
	return nil
}

func (r *FirestoreUserRepo) GetByID(ctx context.Context, uid string) (*models.User, error) {
	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %q: %w", uid, err)
	}
	var u models.User
	if err := snap.DataTo(&u); err != nil {
		return nil, fmt.Errorf("failed to decode user %q: %w", uid, err)
	}
	u.UID = snap.Ref.ID
	return &u, nil
}

func (r *FirestoreUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	it := r.col().Where("email", "==", email).Limit(1).Documents(ctx)
	defer it.Stop()
	snap, err := it.Next()
	if err == iterator.Done {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}
	var u models.User
	if err := snap.DataTo(&u); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	u.UID = snap.Ref.ID
	return &u, nil
}

func (r *FirestoreUserRepo) Update(ctx context.Context, u *models.User) error {
	u.UpdatedAt = time.Now()
	if _, err := r.col().Doc(u.UID).Set(ctx, u); err != nil {
		return fmt.Errorf("failed to update user %q: %w", u.UID, err)
	}
	return nil
}

func (r *FirestoreUserRepo) UpdateRole(ctx context.Context, uid string, role models.Role) error {
	_, err := r.col().Doc(uid).Update(ctx, []firestore.Update{
		{Path: "role", Value: role},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrNotFound
		}
		return fmt.Errorf("failed to update role for user %q: %w", uid, err)
	}
	return nil
}

func (r *FirestoreUserRepo) List(ctx context.Context, limit int) ([]models.User, error) {
	q := r.col().OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	users := make([]models.User, 0, len(snaps))
	for _, snap := range snaps {
		var u models.User
		if err := snap.DataTo(&u); err != nil {
			return nil, fmt.Errorf("failed to decode user %q: %w", snap.Ref.ID, err)
		}
		u.UID = snap.Ref.ID
		users = append(users, u)
	}
	return users, nil
}

func (r *FirestoreUserRepo) Count(ctx context.Context) (int64, error) {
	refs, err := r.col().Select().Documents(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return int64(len(refs)), nil
}
