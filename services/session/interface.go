package session

import (
	"context"

	"stayx/models"
)

// TokenVerifier checks a Firebase ID token and returns the verified identity.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*models.Identity, error)
}

// RoleCache caches the role field of user documents.
type RoleCache interface {
	Get(ctx context.Context, uid string) (models.Role, bool, error)
	Set(ctx context.Context, uid string, role models.Role) error
	Invalidate(ctx context.Context, uid string) error
}

// Service establishes sessions and resolves roles for routing and
// authorization decisions.
type Service interface {
	// Bootstrap verifies the ID token, ensures the user document exists and
	// returns the snapshot the client should act on. storedRedirect, when
	// non-empty and a safe path, takes precedence over the role default.
	Bootstrap(ctx context.Context, idToken, storedRedirect string) (*models.AuthSnapshot, error)

	// EnsureUser creates the user document with the default role when it is
	// missing. Reports whether a document was created.
	EnsureUser(ctx context.Context, ident models.Identity) (*models.User, bool, error)

	// ResolveRole returns the stored role for uid, consulting the cache first.
	ResolveRole(ctx context.Context, uid string) (models.Role, error)

	// InvalidateRole drops the cached role after a role change.
	InvalidateRole(ctx context.Context, uid string) error
}
