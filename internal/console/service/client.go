package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/cirrustranslate/console/internal/console/domain"
	"github.com/cirrustranslate/console/internal/console/store"
	"github.com/cirrustranslate/console/pkg/idx"
	"github.com/cirrustranslate/console/pkg/slogx"
	"github.com/cirrustranslate/console/pkg/validx"
)

var ErrClientNotFound = errors.New("client not found")

// ClientInvitation is a freshly created pending client and its invite.
type ClientInvitation struct {
	Client domain.Client
	IssuedInvite
}

type ClientService struct {
	Store   store.Store
	Invites *InviteService
}

// Invite creates a pending client record and issues its invite in one
// transaction.
func (s *ClientService) Invite(ctx context.Context, draft domain.ClientDraft) (ClientInvitation, error) {
	log := slogx.FromContext(ctx)

	draft.CompanyName = strings.TrimSpace(draft.CompanyName)
	draft.Email = strings.TrimSpace(draft.Email)
	if err := validx.Struct(draft); err != nil {
		return ClientInvitation{}, err
	}

	client := domain.Client{
		ID:            idx.New().String(),
		CompanyName:   draft.CompanyName,
		Email:         draft.Email,
		RatePerMinute: draft.RatePerMinute,
		RatePerWord:   draft.RatePerWord,
		Status:        domain.StatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	var out ClientInvitation
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Clients().CreateClient(ctx, client); err != nil {
			return err
		}
		issued, err := s.Invites.issue(ctx, tx, client.Email, domain.RoleClient, client.ID)
		if err != nil {
			return err
		}
		out = ClientInvitation{Client: client, IssuedInvite: issued}
		return nil
	})
	if err != nil {
		log.Error("failed to invite client", slog.Any("error", err))
		return ClientInvitation{}, err
	}

	return out, nil
}

func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.Store.Clients().ListClients(ctx)
}

func (s *ClientService) Get(ctx context.Context, id string) (domain.Client, error) {
	c, err := s.Store.Clients().GetClientByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Client{}, ErrClientNotFound
	}
	return c, err
}

// UpdateRates changes the client's billing profile. Existing project quotes
// keep the rate they were computed with.
func (s *ClientService) UpdateRates(ctx context.Context, id string, rates domain.Rates) (domain.Client, error) {
	if err := validx.Struct(rates); err != nil {
		return domain.Client{}, err
	}

	err := s.Store.Clients().UpdateClientRates(ctx, id, rates.RatePerMinute, rates.RatePerWord)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Client{}, ErrClientNotFound
	}
	if err != nil {
		return domain.Client{}, err
	}

	slogx.FromContext(ctx).Info("client rates updated", slog.String("client_id", id))
	return s.Get(ctx, id)
}
