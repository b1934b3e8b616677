package googleauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"stayx/models"
	"stayx/services/session"
	"stayx/utils"

	"go.uber.org/zap"
)

// Mode selects the sign-in strategy. The redirect flow delivers an
// authorization code; the popup/direct flows deliver a Google ID token.
type Mode string

const (
	ModeCode    Mode = "code"
	ModeIDToken Mode = "id_token"
)

// SignInRequest carries one Google credential, per Mode.
type SignInRequest struct {
	Mode    Mode
	Code    string
	IDToken string
	// Redirect is the optional post-login path stored by the client.
	Redirect string
}

// SignInResult is the outcome of a completed Google sign-in.
type SignInResult struct {
	CustomToken string               `json:"customToken"`
	Snapshot    *models.AuthSnapshot `json:"snapshot"`
}

// TokenMinter mints Firebase custom tokens. *auth.Client satisfies it.
type TokenMinter interface {
	CustomToken(ctx context.Context, uid string) (string, error)
}

// GoogleAuthService collapses the popup/redirect/direct sign-in variants
// into one strategy-selectable entry point.
type GoogleAuthService interface {
	SignInWithGoogle(ctx context.Context, req SignInRequest) (*SignInResult, error)
}

// DefaultGoogleAuthService is the production implementation.
type DefaultGoogleAuthService struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	HTTPClient   *http.Client

	Minter  TokenMinter
	Session session.Service
}

func (s *DefaultGoogleAuthService) SignInWithGoogle(ctx context.Context, req SignInRequest) (*SignInResult, error) {
	var idToken string
	switch req.Mode {
	case ModeCode:
		if req.Code == "" {
			return nil, errors.New("authorization code is required")
		}
		var err error
		idToken, err = s.exchangeCode(ctx, req.Code)
		if err != nil {
			return nil, err
		}
	case ModeIDToken:
		if req.IDToken == "" {
			return nil, errors.New("id token is required")
		}
		idToken = req.IDToken
	default:
		return nil, fmt.Errorf("unsupported sign-in mode %q", req.Mode)
	}

	claims, err := verifyGoogleIDToken(idToken, s.ClientID)
	if err != nil {
		return nil, err
	}

	ident := models.Identity{
		// Google subject IDs double as Firebase UIDs for federated accounts.
		UID:   claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
	}

	usr, created, err := s.Session.EnsureUser(ctx, ident)
	if err != nil {
		return nil, err
	}

	customToken, err := s.Minter.CustomToken(ctx, usr.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to mint custom token: %w", err)
	}

	redirect := session.DashboardPath(usr.Role)
	if safeRedirect(req.Redirect) {
		redirect = req.Redirect
	}

	utils.GetLogger().Info("google sign-in completed",
		zap.String("uid", usr.UID), zap.String("mode", string(req.Mode)), zap.Bool("newUser", created))

	return &SignInResult{
		CustomToken: customToken,
		Snapshot: &models.AuthSnapshot{
			UID:          usr.UID,
			Email:        usr.Email,
			Name:         usr.Name,
			Role:         usr.Role,
			RedirectPath: redirect,
			NewUser:      created,
		},
	}, nil
}

// safeRedirect accepts only local absolute paths, matching the session
// bootstrap rule.
func safeRedirect(redirect string) bool {
	if len(redirect) == 0 || redirect[0] != '/' {
		return false
	}
	return !(len(redirect) > 1 && redirect[1] == '/')
}
