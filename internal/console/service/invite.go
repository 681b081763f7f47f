package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
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
	ErrInviteNotFound       = errors.New("invite not found or expired")
	ErrInvalidInviteRole    = errors.New("invites are only issued for clients and translators")
	ErrInviteTargetNotFound = errors.New("invite target record not found")
	ErrTermsNotAccepted     = errors.New("terms and conditions must be accepted")
	ErrUsernameTaken        = errors.New("username already taken")
)

// InviteParam is the query parameter the console front end reads the token from.
const InviteParam = "invite"

// IssuedInvite is an invite together with the link handed to the invitee.
type IssuedInvite struct {
	Invite domain.Invite
	URL    string
}

// InviteService is the invite ledger: single-use tokens that let a pending
// client or translator register an account.
type InviteService struct {
	Store     store.Store
	PublicURL string
	TTL       time.Duration // Zero means invites never expire

	Clock func() time.Time
}

func (s *InviteService) now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

// Issue mints an invite for the record targetID of the given role.
func (s *InviteService) Issue(ctx context.Context, email string, role domain.Role, targetID string) (IssuedInvite, error) {
	return s.issue(ctx, s.Store, email, role, targetID)
}

// issue runs against st so callers can mint inside their own transaction.
func (s *InviteService) issue(
	ctx context.Context,
	st store.Store,
	email string,
	role domain.Role,
	targetID string,
) (IssuedInvite, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate role and target
	if !role.Invitable() {
		log.Warn("attempted to issue invite for non-invitable role", slog.String("role", string(role)))
		return IssuedInvite{}, ErrInvalidInviteRole
	}

	var err error
	switch role {
	case domain.RoleClient:
		_, err = st.Clients().GetClientByID(ctx, targetID)
	case domain.RoleTranslator:
		_, err = st.Translators().GetTranslatorByID(ctx, targetID)
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("attempted to issue invite for missing record",
				slog.String("role", string(role)),
				slog.String("target_id", targetID),
			)
			return IssuedInvite{}, ErrInviteTargetNotFound
		}
		return IssuedInvite{}, err
	}

	// 2. Generate the token; only its fingerprint is stored
	token, fingerprint, err := cryptox.NewInviteToken()
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return IssuedInvite{}, err
	}

	now := s.now()
	inv := domain.Invite{
		Token:     token,
		TokenHash: fingerprint,
		Email:     strings.TrimSpace(email),
		Role:      role,
		TargetID:  targetID,
		CreatedAt: now.Truncate(time.Millisecond),
	}
	if s.TTL > 0 {
		exp := now.Add(s.TTL).Truncate(time.Millisecond)
		inv.ExpiresAt = &exp
	}

	// 3. Store invite
	if err := st.Invites().CreateInvite(ctx, inv); err != nil {
		log.Error("failed to create invite", slog.String("target_id", targetID), slog.Any("error", err))
		return IssuedInvite{}, err
	}

	link, err := s.InviteURL(token)
	if err != nil {
		return IssuedInvite{}, err
	}

	log.Info("invite issued",
		slog.String("role", string(role)),
		slog.String("target_id", targetID),
	)
	return IssuedInvite{Invite: inv, URL: link}, nil
}

// InviteURL is the shareable registration link for token.
func (s *InviteService) InviteURL(token string) (string, error) {
	u, err := url.Parse(s.PublicURL)
	if err != nil {
		return "", fmt.Errorf("parse public url: %w", err)
	}
	q := u.Query()
	q.Set(InviteParam, token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Resolve returns the pending invite for token with the raw token filled in.
// Consumed, expired and unknown tokens all report ErrInviteNotFound.
func (s *InviteService) Resolve(ctx context.Context, token string) (domain.Invite, error) {
	if token == "" {
		return domain.Invite{}, ErrInviteNotFound
	}

	inv, err := s.Store.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, ErrInviteNotFound
		}
		return domain.Invite{}, err
	}
	if inv.Expired(s.now()) {
		return domain.Invite{}, ErrInviteNotFound
	}

	inv.Token = token
	return inv, nil
}

// Redeem consumes the invite for token and registers an account for the
// invited record. Consuming the invite, activating the record and creating
// the account happen in one transaction: either all of it happens or none.
func (s *InviteService) Redeem(ctx context.Context, token string, reg domain.Registration) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	if !reg.AcceptedTerms {
		return domain.Account{}, ErrTermsNotAccepted
	}
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Username = strings.TrimSpace(reg.Username)
	reg.Phone = strings.TrimSpace(reg.Phone)
	if err := validx.Struct(reg); err != nil {
		return domain.Account{}, err
	}
	if token == "" {
		return domain.Account{}, ErrInviteNotFound
	}

	// 2. Hash the password before taking the write lock
	passwordHash, err := cryptox.HashPassword(reg.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Account{}, err
	}

	fingerprint := cryptox.FingerprintToken(token)
	var account domain.Account

	// 3. Compare-and-delete the invite, then register, atomically
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		inv, err := tx.Invites().ConsumeInvite(ctx, fingerprint)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteNotFound
			}
			return err
		}
		if inv.Expired(s.now()) {
			return ErrInviteNotFound
		}

		if _, err := tx.Accounts().GetAccountByUsername(ctx, reg.Username); err == nil {
			return ErrUsernameTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		switch inv.Role {
		case domain.RoleClient:
			err = tx.Clients().ActivateClient(ctx, inv.TargetID, reg.Name, reg.Phone)
		case domain.RoleTranslator:
			err = tx.Translators().ActivateTranslator(ctx, inv.TargetID, reg.Name, reg.Phone)
		default:
			err = ErrInvalidInviteRole
		}
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteTargetNotFound
			}
			return err
		}

		account = domain.Account{
			ID:           idx.New().String(),
			Name:         reg.Name,
			Username:     reg.Username,
			Email:        inv.Email,
			Phone:        reg.Phone,
			PasswordHash: passwordHash,
			Role:         inv.Role,
			Status:       domain.StatusActive,
			RecordID:     inv.TargetID,
			CreatedAt:    s.now(),
		}
		if err := tx.Accounts().CreateAccount(ctx, account); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrUsernameTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		log.Warn("invite redemption failed", slog.Any("error", err))
		return domain.Account{}, err
	}

	log.Info("invite redeemed",
		slog.String("account_id", account.ID),
		slog.String("role", string(account.Role)),
		slog.String("record_id", account.RecordID),
	)
	return account, nil
}

// List returns the outstanding invites. Raw tokens are never stored, so the
// returned invites carry fingerprints only.
func (s *InviteService) List(ctx context.Context) ([]domain.Invite, error) {
	return s.Store.Invites().ListInvites(ctx)
}
