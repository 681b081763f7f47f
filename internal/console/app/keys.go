package app

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"log/slog"

	"github.com/cirrustranslate/console/pkg/cryptox"
	"github.com/cirrustranslate/console/pkg/jwtx"
)

// SessionKeys bundles the signer used to mint sessions with the key set and
// verifier that check them.
type SessionKeys struct {
	Signer   *jwtx.EdDSASigner
	KeySet   *jwtx.KeySet
	Verifier *jwtx.EdDSAVerifier
}

// InitSessionKeys loads the Ed25519 key from cfg.SessionKeyFile, creating it
// on first start. Without a file the key lives only in memory and every
// restart signs users out.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*SessionKeys, error) {
	var (
		key ed25519.PrivateKey
		err error
	)

	if cfg.SessionKeyFile != "" {
		key, err = cryptox.LoadOrCreateEd25519Key(cfg.SessionKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load session key: %w", err)
		}
		logger.Info("session key loaded", "path", cfg.SessionKeyFile)
	} else {
		_, key, err = ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("failed to generate session key: %w", err)
		}
		logger.Warn("using ephemeral session key; sessions will not survive a restart")
	}

	// The kid is derived from the public key so a persisted key keeps
	// verifying tokens issued before a restart.
	kid := cryptox.FingerprintToken(string(key.Public().(ed25519.PublicKey)))[:16]
	signer, err := jwtx.NewSignerEdDSA(kid, key)
	if err != nil {
		return nil, err
	}

	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)

	return &SessionKeys{
		Signer:   signer,
		KeySet:   keys,
		Verifier: jwtx.NewVerifierEdDSA(keys, cfg.Issuer, []string{cfg.Issuer}),
	}, nil
}
