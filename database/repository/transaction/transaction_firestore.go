package transaction

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

const transactionsCollection = "transactions"

// FirestoreTransactionRepo implements Repository on Firestore.
type FirestoreTransactionRepo struct {
	client *firestore.Client
}

// NewFirestoreTransactionRepo creates a Firestore-backed transaction repository.
func NewFirestoreTransactionRepo(client *firestore.Client) *FirestoreTransactionRepo {
	return &FirestoreTransactionRepo{client: client}
}

func (r *FirestoreTransactionRepo) col() *firestore.CollectionRef {
	return r.client.Collection(transactionsCollection)
}

func (r *FirestoreTransactionRepo) Create(ctx context.Context, t *models.Transaction) error {
	t.CreatedAt = time.Now()
	if _, err := r.col().Doc(t.ID).Create(ctx, t); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return repository.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create transaction %q: %w", t.ID, err)
	}
	return nil
}

func (r *FirestoreTransactionRepo) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction %q: %w", id, err)
	}
	var t models.Transaction
	if err := snap.DataTo(&t); err != nil {
		return nil, fmt.Errorf("failed to decode transaction %q: %w", id, err)
	}
	t.ID = snap.Ref.ID
	return &t, nil
}

func (r *FirestoreTransactionRepo) ListByBooking(ctx context.Context, bookingID string) ([]models.Transaction, error) {
	return r.collect(ctx, r.col().Where("bookingId", "==", bookingID))
}

func (r *FirestoreTransactionRepo) List(ctx context.Context, limit int) ([]models.Transaction, error) {
	q := r.col().OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}
	return r.collect(ctx, q)
}

func (r *FirestoreTransactionRepo) Count(ctx context.Context) (int64, error) {
	refs, err := r.col().Select().Documents(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return int64(len(refs)), nil
}

func (r *FirestoreTransactionRepo) collect(ctx context.Context, q firestore.Query) ([]models.Transaction, error) {
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	txs := make([]models.Transaction, 0, len(snaps))
	for _, snap := range snaps {
		var t models.Transaction
		if err := snap.DataTo(&t); err != nil {
			return nil, fmt.Errorf("failed to decode transaction %q: %w", snap.Ref.ID, err)
		}
		t.ID = snap.Ref.ID
		txs = append(txs, t)
	}
	return txs, nil
}
