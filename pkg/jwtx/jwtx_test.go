package jwtx_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"
	"time"

	"github.com/cirrustranslate/console/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "https://console.example.test"

func newSigner(t *testing.T, kid string) *jwtx.EdDSASigner {
	t.Helper()

	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA(kid, key)
	require.NoError(t, err)
	return signer
}

func TestEdDSASignAndVerify(t *testing.T) {
	signer := newSigner(t, "session-1")
	require.Equal(t, "EdDSA", signer.Alg())

	now := time.Now().UTC()
	claims := jwtx.NewSessionClaims("acct-1", "CLIENT", "client-1", "finance", "A. Finance",
		exampleIssuer, time.Hour, now)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)
	require.True(t, keys.IsReady())

	got, err := jwtx.NewVerifierEdDSA(keys, exampleIssuer, []string{exampleIssuer}).Verify(token)
	require.NoError(t, err)
	require.Equal(t, "acct-1", got.Subject)
	require.Equal(t, "CLIENT", got.Role)
	require.Equal(t, "client-1", got.RecordID)
	require.Equal(t, "finance", got.Username)
	require.Equal(t, "A. Finance", got.Name)
	require.NotEmpty(t, got.ID)
}

func TestEdDSAVerifyFailures(t *testing.T) {
	signer := newSigner(t, "session-1")
	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)
	verifier := jwtx.NewVerifierEdDSA(keys, exampleIssuer, nil)

	now := time.Now().UTC()

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewSessionClaims("a", "MANAGER", "", "", "", "other", time.Hour, now))
		require.NoError(t, err)
		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewSessionClaims("a", "MANAGER", "", "", "", exampleIssuer, time.Minute, now.Add(-time.Hour)))
		require.NoError(t, err)
		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("unknown kid", func(t *testing.T) {
		other := newSigner(t, "session-2")
		token, err := other.Sign(jwtx.NewSessionClaims("a", "MANAGER", "", "", "", exampleIssuer, time.Hour, now))
		require.NoError(t, err)
		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrUnknownKID)
	})

	t.Run("tampered", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewSessionClaims("a", "CLIENT", "", "", "", exampleIssuer, time.Hour, now))
		require.NoError(t, err)
		parts := strings.Split(token, ".")
		forged, err := signer.Sign(jwtx.NewSessionClaims("a", "MANAGER", "", "", "", exampleIssuer, time.Hour, now))
		require.NoError(t, err)
		parts[1] = strings.Split(forged, ".")[1]
		_, err = verifier.Verify(strings.Join(parts, "."))
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := verifier.Verify("not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("removed key", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewSessionClaims("a", "MANAGER", "", "", "", exampleIssuer, time.Hour, now))
		require.NoError(t, err)
		keys.Remove(signer.KID())
		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrUnknownKID)
	})
}

func TestNewSignerRejectsBadInput(t *testing.T) {
	_, err := jwtx.NewSignerEdDSA("kid", ed25519.PrivateKey{1, 2, 3})
	require.Error(t, err)

	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	_, err = jwtx.NewSignerEdDSA("", key)
	require.Error(t, err)
}
