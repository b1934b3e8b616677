package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"stayx/database/repository"
	"stayx/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFavoriteRepo struct {
	favorites map[string]models.Favorite // userID + "/" + propertyID
	addCalls  int
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: map[string]models.Favorite{}}
}

func (r *fakeFavoriteRepo) Add(ctx context.Context, f *models.Favorite) error {
	r.addCalls++
	r.favorites[f.UserID+"/"+f.PropertyID] = *f
	return nil
}

func (r *fakeFavoriteRepo) Remove(ctx context.Context, userID, propertyID string) error {
	delete(r.favorites, userID+"/"+propertyID)
	return nil
}

func (r *fakeFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	var out []models.Favorite
	for _, f := range r.favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFavoriteRepo) Exists(ctx context.Context, userID, propertyID string) (bool, error) {
	_, ok := r.favorites[userID+"/"+propertyID]
	return ok, nil
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

func favoriteTestContext(t *testing.T, uid, propertyID string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/favorites/"+propertyID, nil)
	c.Set("userID", uid)
	c.Params = gin.Params{{Key: "propertyId", Value: propertyID}}
	return c, w
}

func TestAddFavorite(t *testing.T) {
	favs := newFakeFavoriteRepo()
	h := NewFavoriteHandler(favs, newFakePropertyRepo(&models.Property{ID: "prop-1", Name: "Lakeside Loft"}))

	c, w := favoriteTestContext(t, "user-1", "prop-1")
	h.AddHandler(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, favs.addCalls)

	ok, err := favs.Exists(context.Background(), "user-1", "prop-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAddFavoriteTwiceIsNoOp(t *testing.T) {
	favs := newFakeFavoriteRepo()
	h := NewFavoriteHandler(favs, newFakePropertyRepo(&models.Property{ID: "prop-1", Name: "Lakeside Loft"}))

	c, w := favoriteTestContext(t, "user-1", "prop-1")
	h.AddHandler(c)
	require.Equal(t, http.StatusOK, w.Code)

	// The duplicate add succeeds without a second write.
	c, w = favoriteTestContext(t, "user-1", "prop-1")
	h.AddHandler(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, favs.addCalls)
}

func TestAddFavoriteUnknownProperty(t *testing.T) {
	favs := newFakeFavoriteRepo()
	h := NewFavoriteHandler(favs, newFakePropertyRepo())

	c, w := favoriteTestContext(t, "user-1", "prop-missing")
	h.AddHandler(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, favs.addCalls)
}
