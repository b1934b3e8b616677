package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stayx/database/repository"
	userRepo "stayx/database/repository/user"
	"stayx/models"
	"stayx/utils"

	"go.uber.org/zap"
)

// DefaultSessionService is the production implementation.
type DefaultSessionService struct {
	Verifier TokenVerifier
	Users    userRepo.Repository
	Roles    RoleCache
}

// DashboardPath maps a role to its dashboard root.
func DashboardPath(role models.Role) string {
	switch role {
	case models.RolePropertyAdmin:
		return "/property-admin"
	case models.RoleSuperAdmin:
		return "/super-admin"
	default:
		return "/customer"
	}
}

// validRedirect accepts only local absolute paths. Protocol-relative and
// external URLs are rejected so a stored redirect cannot leave the app.
func validRedirect(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//")
}

func (s *DefaultSessionService) Bootstrap(ctx context.Context, idToken, storedRedirect string) (*models.AuthSnapshot, error) {
	ident, err := s.Verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}

	usr, created, err := s.EnsureUser(ctx, *ident)
	if err != nil {
		return nil, err
	}

	redirect := DashboardPath(usr.Role)
	if storedRedirect != "" && validRedirect(storedRedirect) {
		redirect = storedRedirect
	}

	if s.Roles != nil {
		if err := s.Roles.Set(ctx, usr.UID, usr.Role); err != nil {
			utils.GetLogger().Warn("failed to prime role cache", zap.String("uid", usr.UID), zap.Error(err))
		}
	}

	return &models.AuthSnapshot{
		UID:          usr.UID,
		Email:        usr.Email,
		Name:         usr.Name,
		Role:         usr.Role,
		RedirectPath: redirect,
		NewUser:      created,
		IssuedAt:     time.Now(),
	}, nil
}

func (s *DefaultSessionService) EnsureUser(ctx context.Context, ident models.Identity) (*models.User, bool, error) {
	usr, err := s.Users.GetByID(ctx, ident.UID)
	if err == nil {
		return usr, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to load user %q: %w", ident.UID, err)
	}

	// First sign-in: create the document with the default role.
	fresh := &models.User{
		UID:   ident.UID,
		Email: ident.Email,
		Name:  ident.Name,
		Role:  models.RoleCustomer,
	}
	err = s.Users.Create(ctx, fresh)
	if err == nil {
		utils.GetLogger().Info("created user document on first sign-in", zap.String("uid", ident.UID))
		return fresh, true, nil
	}
	if errors.Is(err, repository.ErrAlreadyExists) {
		// Lost the create race to a concurrent sign-in; the stored document wins.
		usr, rerr := s.Users.GetByID(ctx, ident.UID)
		if rerr != nil {
			return nil, false, fmt.Errorf("failed to re-read user %q after create race: %w", ident.UID, rerr)
		}
		return usr, false, nil
	}
	return nil, false, fmt.Errorf("failed to create user %q: %w", ident.UID, err)
}

func (s *DefaultSessionService) ResolveRole(ctx context.Context, uid string) (models.Role, error) {
	if s.Roles != nil {
		role, ok, err := s.Roles.Get(ctx, uid)
		if err != nil {
			utils.GetLogger().Warn("role cache read failed, falling back to store", zap.Error(err))
		} else if ok {
			return role, nil
		}
	}

	usr, err := s.Users.GetByID(ctx, uid)
	if err != nil {
		return "", fmt.Errorf("failed to resolve role for %q: %w", uid, err)
	}
	if s.Roles != nil {
		if err := s.Roles.Set(ctx, uid, usr.Role); err != nil {
			utils.GetLogger().Warn("failed to cache role", zap.String("uid", uid), zap.Error(err))
		}
	}
	return usr.Role, nil
}

func (s *DefaultSessionService) InvalidateRole(ctx context.Context, uid string) error {
	if s.Roles == nil {
		return nil
	}
	return s.Roles.Invalidate(ctx, uid)
}
