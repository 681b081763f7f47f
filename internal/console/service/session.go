package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/cirrustranslate/console/internal/console/domain"
	"github.com/cirrustranslate/console/internal/console/store"
	"github.com/cirrustranslate/console/pkg/cryptox"
	"github.com/cirrustranslate/console/pkg/jwtx"
	"github.com/cirrustranslate/console/pkg/slogx"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Session is a signed-in account and the bearer token that represents it.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Account   domain.Account
}

type SessionService struct {
	Store  store.Store
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
}

// Login matches login against usernames and emails case-insensitively and
// returns a session for the first account whose password verifies.
func (s *SessionService) Login(ctx context.Context, login, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	// 1. Find candidate accounts
	candidates, err := s.Store.Accounts().ListAccountsByLogin(ctx, login)
	if err != nil {
		log.Error("failed to look up accounts", slog.Any("error", err))
		return Session{}, err
	}

	// 2. Verify the password against each
	for _, acc := range candidates {
		if acc.Status != domain.StatusActive {
			continue
		}
		if cryptox.VerifyPassword(password, acc.PasswordHash) != nil {
			continue
		}
		return s.issue(acc)
	}

	log.Warn("login failed", slog.Int("candidates", len(candidates)))
	return Session{}, ErrInvalidCredentials
}

func (s *SessionService) issue(acc domain.Account) (Session, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	now := time.Now().UTC()
	claims := jwtx.NewSessionClaims(acc.ID, string(acc.Role), acc.RecordID,
		acc.Username, acc.Name, s.Issuer, ttl, now)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return Session{}, err
	}

	return Session{Token: token, ExpiresAt: now.Add(ttl), Account: acc}, nil
}

// ActorFromClaims rebuilds the caller identity from verified session claims.
func ActorFromClaims(c jwtx.Claims) domain.Actor {
	return domain.Actor{
		AccountID: c.Subject,
		Role:      domain.Role(c.Role),
		RecordID:  c.RecordID,
	}
}
