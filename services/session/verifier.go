package session

import (
	"context"
	"fmt"

	"stayx/models"

	"firebase.google.com/go/v4/auth"
)

// FirebaseVerifier verifies ID tokens against Firebase Auth.
type FirebaseVerifier struct {
	Client *auth.Client
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*models.Identity, error) {
	token, err := v.Client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired ID token: %w", err)
	}

	ident := &models.Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		ident.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		ident.Name = name
	}
	return ident, nil
}
