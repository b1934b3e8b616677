package googleauth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeRedirect(t *testing.T) {
	assert.True(t, safeRedirect("/customer"))
	assert.True(t, safeRedirect("/properties/abc?tab=photos"))
	assert.False(t, safeRedirect(""))
	assert.False(t, safeRedirect("customer"))
	assert.False(t, safeRedirect("https://evil.example.com"))
	assert.False(t, safeRedirect("//evil.example.com"))
}

func TestConvertJWKToPublicKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	n := base64.RawURLEncoding.EncodeToString(key.N.Bytes())
	e := base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes())

	pub, err := convertJWKToPublicKey(n, e)
	require.NoError(t, err)
	assert.Equal(t, 0, key.N.Cmp(pub.N))
	assert.Equal(t, key.E, pub.E)
}

func TestConvertJWKToPublicKeyRejectsBadEncoding(t *testing.T) {
	_, err := convertJWKToPublicKey("not-base64!!", "AQAB")
	assert.Error(t, err)
	_, err = convertJWKToPublicKey("AQAB", "not-base64!!")
	assert.Error(t, err)
}

func TestSignInWithGoogleRejectsBadRequests(t *testing.T) {
	svc := &DefaultGoogleAuthService{}

	_, err := svc.SignInWithGoogle(context.Background(), SignInRequest{Mode: ModeCode})
	assert.Error(t, err)

	_, err = svc.SignInWithGoogle(context.Background(), SignInRequest{Mode: ModeIDToken})
	assert.Error(t, err)

	_, err = svc.SignInWithGoogle(context.Background(), SignInRequest{Mode: "implicit"})
	assert.Error(t, err)
}
