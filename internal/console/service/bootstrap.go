package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/cirrustranslate/console/internal/console/domain"
	"github.com/cirrustranslate/console/internal/console/store"
	"github.com/cirrustranslate/console/pkg/cryptox"
	"github.com/cirrustranslate/console/pkg/idx"
	"github.com/cirrustranslate/console/pkg/slogx"
	"github.com/cirrustranslate/console/pkg/validx"
)

var (
	ErrBootstrapAlready      = errors.New("platform already initialized")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// BootstrapService performs the one-time platform setup that creates the
// manager account.
type BootstrapService struct {
	Store store.Store
	Token string // Optional pre-shared setup token
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	n, err := s.Store.Accounts().CountByRole(ctx, domain.RoleManager)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CheckToken compares token with the configured setup token. Without a
// configured token any value passes.
func (s *BootstrapService) CheckToken(token string) error {
	if s.Token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		return ErrBootstrapUnauthorized
	}
	return nil
}

func (s *BootstrapService) Bootstrap(ctx context.Context, token string, req domain.AdminSetup) (domain.Account, error) {
	l := slogx.FromContext(ctx)

	// 1. Validate provided token, when one is configured
	if err := s.CheckToken(token); err != nil {
		l.Warn("unauthorized bootstrap attempt")
		return domain.Account{}, err
	}

	// 2. Validate the setup form
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	if err := validx.Struct(req); err != nil {
		return domain.Account{}, err
	}

	// 3. Hash password
	passHash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		l.Error("failed to hash admin password", slog.Any("error", err))
		return domain.Account{}, err
	}

	admin := domain.Account{
		ID:           idx.New().String(),
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passHash,
		Role:         domain.RoleManager,
		Status:       domain.StatusActive,
		CreatedAt:    time.Now().UTC(),
	}

	// 4. Check and create in one transaction so two racing setups cannot
	// both succeed
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Accounts().CountByRole(ctx, domain.RoleManager)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrBootstrapAlready
		}
		return tx.Accounts().CreateAccount(ctx, admin)
	})
	if err != nil {
		if errors.Is(err, ErrBootstrapAlready) {
			l.Warn("attempted bootstrap on already-initialized platform")
		} else {
			l.Error("failed to create admin account", slog.Any("error", err))
		}
		return domain.Account{}, err
	}

	l.Info("platform initialized", slog.String("admin_account_id", admin.ID))
	return admin, nil
}
