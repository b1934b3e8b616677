package session

import (
	"context"
	"errors"
	"testing"

	"stayx/database/repository"
	"stayx/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	ident *models.Identity
	err   error
}

func (v *fakeVerifier) Verify(ctx context.Context, idToken string) (*models.Identity, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.ident, nil
}

type fakeUserRepo struct {
	users       map[string]*models.User
	createRaces int
	getCalls    int
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		clone := *u
		r.users[u.UID] = &clone
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	if r.createRaces > 0 {
		r.createRaces--
		clone := *u
		clone.Role = models.RolePropertyAdmin // the racing writer won with a different role
		r.users[u.UID] = &clone
		return repository.ErrAlreadyExists
	}
	if _, ok := r.users[u.UID]; ok {
		return repository.ErrAlreadyExists
	}
	clone := *u
	r.users[u.UID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, uid string) (*models.User, error) {
	r.getCalls++
	u, ok := r.users[uid]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, u *models.User) error {
	clone := *u
	r.users[u.UID] = &clone
	return nil
}

func (r *fakeUserRepo) UpdateRole(ctx context.Context, uid string, role models.Role) error {
	u, ok := r.users[uid]
	if !ok {
		return repository.ErrNotFound
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, limit int) ([]models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type memRoleCache struct {
	roles map[string]models.Role
}

func newMemRoleCache() *memRoleCache { return &memRoleCache{roles: map[string]models.Role{}} }

func (c *memRoleCache) Get(ctx context.Context, uid string) (models.Role, bool, error) {
	role, ok := c.roles[uid]
	return role, ok, nil
}

func (c *memRoleCache) Set(ctx context.Context, uid string, role models.Role) error {
	c.roles[uid] = role
	return nil
}

func (c *memRoleCache) Invalidate(ctx context.Context, uid string) error {
	delete(c.roles, uid)
	return nil
}

func TestDashboardPath(t *testing.T) {
	assert.Equal(t, "/customer", DashboardPath(models.RoleCustomer))
	assert.Equal(t, "/property-admin", DashboardPath(models.RolePropertyAdmin))
	assert.Equal(t, "/super-admin", DashboardPath(models.RoleSuperAdmin))
	// Unknown roles fall back to the customer dashboard.
	assert.Equal(t, "/customer", DashboardPath(models.Role("GUEST")))
}

func TestBootstrapFirstSignIn(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc := &DefaultSessionService{
		Verifier: &fakeVerifier{ident: &models.Identity{UID: "uid-1", Email: "amina@example.com", Name: "Amina"}},
		Users:    users,
		Roles:    newMemRoleCache(),
	}

	snap, err := svc.Bootstrap(ctx, "token", "")
	require.NoError(t, err)
	assert.True(t, snap.NewUser)
	assert.Equal(t, models.RoleCustomer, snap.Role)
	assert.Equal(t, "/customer", snap.RedirectPath)

	stored, err := users.GetByID(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, stored.Role)
	assert.Equal(t, "amina@example.com", stored.Email)
}

func TestBootstrapExistingUserRouting(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo(&models.User{UID: "uid-1", Email: "o@example.com", Role: models.RolePropertyAdmin})
	svc := &DefaultSessionService{
		Verifier: &fakeVerifier{ident: &models.Identity{UID: "uid-1", Email: "o@example.com"}},
		Users:    users,
		Roles:    newMemRoleCache(),
	}

	snap, err := svc.Bootstrap(ctx, "token", "")
	require.NoError(t, err)
	assert.False(t, snap.NewUser)
	assert.Equal(t, "/property-admin", snap.RedirectPath)
}

func TestBootstrapStoredRedirect(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo(&models.User{UID: "uid-1", Role: models.RoleCustomer})
	svc := &DefaultSessionService{
		Verifier: &fakeVerifier{ident: &models.Identity{UID: "uid-1"}},
		Users:    users,
	}

	cases := []struct {
		name     string
		redirect string
		want     string
	}{
		{"valid local path wins", "/properties/abc", "/properties/abc"},
		{"empty falls back to role default", "", "/customer"},
		{"external URL rejected", "https://evil.example.com/phish", "/customer"},
		{"protocol-relative rejected", "//evil.example.com", "/customer"},
		{"relative path rejected", "properties/abc", "/customer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap, err := svc.Bootstrap(ctx, "token", tc.redirect)
			require.NoError(t, err)
			assert.Equal(t, tc.want, snap.RedirectPath)
		})
	}
}

func TestBootstrapVerifierFailure(t *testing.T) {
	svc := &DefaultSessionService{
		Verifier: &fakeVerifier{err: errors.New("expired token")},
		Users:    newFakeUserRepo(),
	}
	_, err := svc.Bootstrap(context.Background(), "bad", "")
	assert.Error(t, err)
}

func TestEnsureUserCreateRace(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	users.createRaces = 1
	svc := &DefaultSessionService{Users: users}

	usr, created, err := svc.EnsureUser(ctx, models.Identity{UID: "uid-1", Email: "x@example.com"})
	require.NoError(t, err)
	// The concurrent writer's document wins, so this sign-in is not a create.
	assert.False(t, created)
	assert.Equal(t, models.RolePropertyAdmin, usr.Role)
}

func TestResolveRoleUsesCache(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo(&models.User{UID: "uid-1", Role: models.RoleSuperAdmin})
	cache := newMemRoleCache()
	svc := &DefaultSessionService{Users: users, Roles: cache}

	role, err := svc.ResolveRole(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, role)
	storeReads := users.getCalls

	// Second resolution is served from the cache.
	role, err = svc.ResolveRole(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, role)
	assert.Equal(t, storeReads, users.getCalls)

	// Invalidation forces the next read back to the store.
	require.NoError(t, svc.InvalidateRole(ctx, "uid-1"))
	_, err = svc.ResolveRole(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, storeReads+1, users.getCalls)
}
