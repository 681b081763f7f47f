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

var ErrTranslatorNotFound = errors.New("translator not found")

type TranslatorInvitation struct {
	Translator domain.Translator
	IssuedInvite
}

type TranslatorService struct {
	Store   store.Store
	Invites *InviteService
}

// Invite creates a pending translator with the default billing profile
// unless rates are supplied, and issues the invite in the same transaction.
func (s *TranslatorService) Invite(ctx context.Context, draft domain.TranslatorDraft) (TranslatorInvitation, error) {
	log := slogx.FromContext(ctx)

	draft.Name = strings.TrimSpace(draft.Name)
	draft.Email = strings.TrimSpace(draft.Email)
	if err := validx.Struct(draft); err != nil {
		return TranslatorInvitation{}, err
	}

	perWord, perMinute := draft.Rates()
	tr := domain.Translator{
		ID:            idx.New().String(),
		Name:          draft.Name,
		Email:         draft.Email,
		IsDeaf:        draft.IsDeaf,
		RatePerWord:   perWord,
		RatePerMinute: perMinute,
		Status:        domain.StatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	var out TranslatorInvitation
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Translators().CreateTranslator(ctx, tr); err != nil {
			return err
		}
		issued, err := s.Invites.issue(ctx, tx, tr.Email, domain.RoleTranslator, tr.ID)
		if err != nil {
			return err
		}
		out = TranslatorInvitation{Translator: tr, IssuedInvite: issued}
		return nil
	})
	if err != nil {
		log.Error("failed to invite translator", slog.Any("error", err))
		return TranslatorInvitation{}, err
	}

	return out, nil
}

func (s *TranslatorService) List(ctx context.Context) ([]domain.Translator, error) {
	return s.Store.Translators().ListTranslators(ctx)
}

func (s *TranslatorService) Get(ctx context.Context, id string) (domain.Translator, error) {
	t, err := s.Store.Translators().GetTranslatorByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Translator{}, ErrTranslatorNotFound
	}
	return t, err
}

func (s *TranslatorService) UpdateRates(ctx context.Context, id string, rates domain.Rates) (domain.Translator, error) {
	if err := validx.Struct(rates); err != nil {
		return domain.Translator{}, err
	}

	err := s.Store.Translators().UpdateTranslatorRates(ctx, id, rates.RatePerMinute, rates.RatePerWord)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Translator{}, ErrTranslatorNotFound
	}
	if err != nil {
		return domain.Translator{}, err
	}

	slogx.FromContext(ctx).Info("translator rates updated", slog.String("translator_id", id))
	return s.Get(ctx, id)
}
