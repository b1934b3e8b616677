package booking

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

const bookingsCollection = "bookings"

// FirestoreBookingRepo implements Repository on Firestore.
type FirestoreBookingRepo struct {
	client *firestore.Client
}

// NewFirestoreBookingRepo creates a Firestore-backed booking repository.
func NewFirestoreBookingRepo(client *firestore.Client) *FirestoreBookingRepo {
	return &FirestoreBookingRepo{client: client}
}

func (r *FirestoreBookingRepo) col() *firestore.CollectionRef {
	return r.client.Collection(bookingsCollection)
}

func (r *FirestoreBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	if _, err := r.col().Doc(b.ID).Create(ctx, b); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return repository.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create booking %q: %w", b.ID, err)
	}
	return nil
}

func (r *FirestoreBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking %q: %w", id, err)
	}
	var b models.Booking
	if err := snap.DataTo(&b); err != nil {
		return nil, fmt.Errorf("failed to decode booking %q: %w", id, err)
	}
	b.ID = snap.Ref.ID
	return &b, nil
}

func (r *FirestoreBookingRepo) Update(ctx context.Context, b *models.Booking) error {
	b.UpdatedAt = time.Now()
	if _, err := r.col().Doc(b.ID).Set(ctx, b); err != nil {
		return fmt.Errorf("failed to update booking %q: %w", b.ID, err)
	}
	return nil
}

func (r *FirestoreBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return r.collect(ctx, r.col().Where("userId", "==", userID))
}

func (r *FirestoreBookingRepo) ListByProperty(ctx context.Context, propertyID string) ([]models.Booking, error) {
	return r.collect(ctx, r.col().Where("propertyId", "==", propertyID))
}

// ConfirmedOverlapping queries by property and check-in bound, then filters
// the check-out bound in memory. Firestore allows range conditions on a
// single field per query, so the second bound cannot be pushed down.
func (r *FirestoreBookingRepo) ConfirmedOverlapping(ctx context.Context, propertyID string, in, out time.Time) ([]models.Booking, error) {
	q := r.col().
		Where("propertyId", "==", propertyID).
		Where("status", "==", string(models.BookingConfirmed)).
		Where("checkInDate", "<", out)
	candidates, err := r.collect(ctx, q)
	if err != nil {
		return nil, err
	}
	var overlapping []models.Booking
	for _, b := range candidates {
		if b.Overlaps(in, out) {
			overlapping = append(overlapping, b)
		}
	}
	return overlapping, nil
}

func (r *FirestoreBookingRepo) StalePendingCard(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	q := r.col().
		Where("status", "==", string(models.BookingPending)).
		Where("paymentMethod", "==", string(models.PaymentCard)).
		Where("createdAt", "<", cutoff)
	candidates, err := r.collect(ctx, q)
	if err != nil {
		return nil, err
	}
	var stale []models.Booking
	for _, b := range candidates {
		if b.PaymentIntentID != "" {
			stale = append(stale, b)
		}
	}
	return stale, nil
}

func (r *FirestoreBookingRepo) Count(ctx context.Context) (int64, error) {
	refs, err := r.col().Select().Documents(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return int64(len(refs)), nil
}

func (r *FirestoreBookingRepo) collect(ctx context.Context, q firestore.Query) ([]models.Booking, error) {
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	bookings := make([]models.Booking, 0, len(snaps))
	for _, snap := range snaps {
		var b models.Booking
		if err := snap.DataTo(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking %q: %w", snap.Ref.ID, err)
		}
		b.ID = snap.Ref.ID
		bookings = append(bookings, b)
	}
	return bookings, nil
}
