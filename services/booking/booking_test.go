package booking

import (
	"context"
	"testing"
	"time"

	"stayx/database/repository"
	"stayx/models"
	"stayx/services/property"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo(bs ...*models.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{bookings: map[string]*models.Booking{}}
	for _, b := range bs {
		clone := *b
		r.bookings[b.ID] = &clone
	}
	return r
}

func (r *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *fakeBookingRepo) Update(ctx context.Context, b *models.Booking) error {
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByProperty(ctx context.Context, propertyID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.PropertyID == propertyID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ConfirmedOverlapping(ctx context.Context, propertyID string, in, out time.Time) ([]models.Booking, error) {
	var hits []models.Booking
	for _, b := range r.bookings {
		if b.PropertyID == propertyID && b.Status == models.BookingConfirmed && b.Overlaps(in, out) {
			hits = append(hits, *b)
		}
	}
	return hits, nil
}

func (r *fakeBookingRepo) StalePendingCard(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.bookings)), nil
}

type fakePropertyRepo struct {
	props map[string]*models.Property
}

func newFakePropertyRepo(ps ...*models.Property) *fakePropertyRepo {
	r := &fakePropertyRepo{props: map[string]*models.Property{}}
	for _, p := range ps {
		clone := *p
		r.props[p.ID] = &clone
	}
	return r
}

func (r *fakePropertyRepo) Create(ctx context.Context, p *models.Property) error {
	clone := *p
	r.props[p.ID] = &clone
	return nil
}

func (r *fakePropertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	p, ok := r.props[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakePropertyRepo) Update(ctx context.Context, p *models.Property) error {
	clone := *p
	r.props[p.ID] = &clone
	return nil
}

func (r *fakePropertyRepo) Delete(ctx context.Context, id string) error {
	delete(r.props, id)
	return nil
}

func (r *fakePropertyRepo) ListFeatured(ctx context.Context, limit int) ([]models.Property, error) {
	return nil, nil
}

func (r *fakePropertyRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Property, error) {
	return nil, nil
}

func (r *fakePropertyRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.props)), nil
}

func day(n int) time.Time {
	return time.Date(2026, time.September, n, 0, 0, 0, 0, time.UTC)
}

func testProperty() *models.Property {
	return &models.Property{ID: "prop-1", OwnerID: "owner-1", Name: "Lakeside Loft", Price: 120.00}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	bookings := newFakeBookingRepo()
	svc := &DefaultBookingService{Bookings: bookings, Properties: newFakePropertyRepo(testProperty())}

	b, err := svc.Create(ctx, "user-1", models.BookingInput{
		PropertyID:   "prop-1",
		CheckInDate:  day(10),
		CheckOutDate: day(13),
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, 360.00, b.TotalPrice) // 3 nights at 120

	stored, err := bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", stored.UserID)
}

func TestCreateBookingRejectsBadDates(t *testing.T) {
	svc := &DefaultBookingService{Bookings: newFakeBookingRepo(), Properties: newFakePropertyRepo(testProperty())}

	_, err := svc.Create(context.Background(), "user-1", models.BookingInput{
		PropertyID:   "prop-1",
		CheckInDate:  day(13),
		CheckOutDate: day(10),
	})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), "user-1", models.BookingInput{
		PropertyID:   "prop-1",
		CheckInDate:  day(10),
		CheckOutDate: day(10),
	})
	assert.Error(t, err)
}

func TestCreateBookingOverlap(t *testing.T) {
	ctx := context.Background()
	confirmed := &models.Booking{
		ID:           "bk-existing",
		PropertyID:   "prop-1",
		UserID:       "someone",
		CheckInDate:  day(10),
		CheckOutDate: day(15),
		Status:       models.BookingConfirmed,
	}
	svc := &DefaultBookingService{
		Bookings:   newFakeBookingRepo(confirmed),
		Properties: newFakePropertyRepo(testProperty()),
	}

	_, err := svc.Create(ctx, "user-1", models.BookingInput{
		PropertyID:   "prop-1",
		CheckInDate:  day(12),
		CheckOutDate: day(17),
	})
	assert.ErrorIs(t, err, ErrDatesUnavailable)

	// Back-to-back stays share a boundary day without overlapping.
	b, err := svc.Create(ctx, "user-1", models.BookingInput{
		PropertyID:   "prop-1",
		CheckInDate:  day(15),
		CheckOutDate: day(18),
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, b.Status)
}

func TestCreateBookingIgnoresPendingOverlap(t *testing.T) {
	pending := &models.Booking{
		ID:           "bk-pending",
		PropertyID:   "prop-1",
		CheckInDate:  day(10),
		CheckOutDate: day(15),
		Status:       models.BookingPending,
	}
	svc := &DefaultBookingService{
		Bookings:   newFakeBookingRepo(pending),
		Properties: newFakePropertyRepo(testProperty()),
	}

	// Only confirmed bookings block dates.
	_, err := svc.Create(context.Background(), "user-1", models.BookingInput{
		PropertyID:   "prop-1",
		CheckInDate:  day(12),
		CheckOutDate: day(14),
	})
	assert.NoError(t, err)
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 360.00, TotalPrice(120, day(10), day(13)))
	assert.Equal(t, 120.00, TotalPrice(120, day(10), day(11)))
	// Partial nights round up to a full started night.
	assert.Equal(t, 240.00, TotalPrice(120, day(10), day(11).Add(6*time.Hour)))
}

func TestGetForUserOwnership(t *testing.T) {
	b := &models.Booking{ID: "bk-1", UserID: "user-1", Status: models.BookingPending}
	svc := &DefaultBookingService{Bookings: newFakeBookingRepo(b), Properties: newFakePropertyRepo()}

	_, err := svc.GetForUser(context.Background(), "user-2", "bk-1")
	assert.ErrorIs(t, err, ErrNotBookingOwner)

	got, err := svc.GetForUser(context.Background(), "user-1", "bk-1")
	require.NoError(t, err)
	assert.Equal(t, "bk-1", got.ID)
}

func TestListForPropertyOwnerCheck(t *testing.T) {
	ctx := context.Background()
	b := &models.Booking{ID: "bk-1", PropertyID: "prop-1", UserID: "guest"}
	svc := &DefaultBookingService{
		Bookings:   newFakeBookingRepo(b),
		Properties: newFakePropertyRepo(testProperty()),
	}

	stranger := &models.AuthSnapshot{UID: "not-owner", Role: models.RolePropertyAdmin}
	_, err := svc.ListForProperty(ctx, stranger, "prop-1")
	assert.ErrorIs(t, err, property.ErrNotPropertyOwner)

	owner := &models.AuthSnapshot{UID: "owner-1", Role: models.RolePropertyAdmin}
	got, err := svc.ListForProperty(ctx, owner, "prop-1")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// A super admin may list any property's bookings.
	admin := &models.AuthSnapshot{UID: "not-owner", Role: models.RoleSuperAdmin}
	got, err = svc.ListForProperty(ctx, admin, "prop-1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("pending booking cancels", func(t *testing.T) {
		b := &models.Booking{ID: "bk-1", UserID: "user-1", Status: models.BookingPending}
		svc := &DefaultBookingService{Bookings: newFakeBookingRepo(b), Properties: newFakePropertyRepo()}

		got, err := svc.Cancel(ctx, "user-1", "bk-1")
		require.NoError(t, err)
		assert.Equal(t, models.BookingCancelled, got.Status)
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		b := &models.Booking{ID: "bk-1", UserID: "user-1", Status: models.BookingCancelled}
		svc := &DefaultBookingService{Bookings: newFakeBookingRepo(b), Properties: newFakePropertyRepo()}

		got, err := svc.Cancel(ctx, "user-1", "bk-1")
		require.NoError(t, err)
		assert.Equal(t, models.BookingCancelled, got.Status)
	})

	t.Run("confirmed booking is not cancellable", func(t *testing.T) {
		b := &models.Booking{ID: "bk-1", UserID: "user-1", Status: models.BookingConfirmed}
		svc := &DefaultBookingService{Bookings: newFakeBookingRepo(b), Properties: newFakePropertyRepo()}

		_, err := svc.Cancel(ctx, "user-1", "bk-1")
		assert.ErrorIs(t, err, ErrNotCancellable)
	})
}
