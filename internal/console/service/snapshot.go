package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cirrustranslate/console/internal/console/domain"
	"github.com/cirrustranslate/console/internal/console/store"
	"github.com/cirrustranslate/console/pkg/slogx"
)

var (
	ErrSnapshotTargetNotEmpty = errors.New("snapshots can only be imported before platform setup")
	ErrSnapshotInvalid        = errors.New("invalid snapshot")
)

// SnapshotService moves the whole console state in and out as the six
// persisted sections.
type SnapshotService struct {
	Store store.Store
}

func (s *SnapshotService) Export(ctx context.Context) (domain.Snapshot, error) {
	var snap domain.Snapshot

	// Read every section from one transaction so the sections agree.
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		accounts, err := tx.Accounts().ListAccounts(ctx)
		if err != nil {
			return err
		}
		for i := range accounts {
			if accounts[i].Role == domain.RoleManager {
				if snap.Admin == nil {
					admin := accounts[i]
					snap.Admin = &admin
				}
				continue
			}
			snap.Accounts = append(snap.Accounts, accounts[i])
		}

		if snap.Clients, err = tx.Clients().ListClients(ctx); err != nil {
			return err
		}
		if snap.Translators, err = tx.Translators().ListTranslators(ctx); err != nil {
			return err
		}
		if snap.Projects, err = tx.Projects().ListProjects(ctx); err != nil {
			return err
		}
		snap.Invites, err = tx.Invites().ListInvites(ctx)
		return err
	})
	if err != nil {
		return domain.Snapshot{}, err
	}
	return snap, nil
}

// Import restores snap into a store that has not been set up yet. Records
// keep their ids, timestamps and password hashes.
func (s *SnapshotService) Import(ctx context.Context, snap domain.Snapshot) error {
	log := slogx.FromContext(ctx)

	// The admin section holds the only manager.
	if snap.Admin != nil && snap.Admin.Role != domain.RoleManager {
		return fmt.Errorf("%w: admin section must hold a manager account", ErrSnapshotInvalid)
	}
	for _, a := range snap.Accounts {
		if a.Role == domain.RoleManager {
			return fmt.Errorf("%w: account %q is a manager outside the admin section", ErrSnapshotInvalid, a.ID)
		}
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Accounts().CountByRole(ctx, domain.RoleManager)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrSnapshotTargetNotEmpty
		}

		if snap.Admin != nil {
			if err := tx.Accounts().CreateAccount(ctx, *snap.Admin); err != nil {
				return err
			}
		}
		for _, c := range snap.Clients {
			if err := tx.Clients().CreateClient(ctx, c); err != nil {
				return err
			}
		}
		for _, t := range snap.Translators {
			if err := tx.Translators().CreateTranslator(ctx, t); err != nil {
				return err
			}
		}
		for _, p := range snap.Projects {
			if err := tx.Projects().CreateProject(ctx, p); err != nil {
				return err
			}
		}
		for _, a := range snap.Accounts {
			if err := tx.Accounts().CreateAccount(ctx, a); err != nil {
				return err
			}
		}
		for _, inv := range snap.Invites {
			if err := tx.Invites().CreateInvite(ctx, inv); err != nil {
				return err
			}
		}
		return nil
	})
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		err = fmt.Errorf("%w: duplicate record id or username", ErrSnapshotInvalid)
	case errors.Is(err, store.ErrInvalidReference):
		err = fmt.Errorf("%w: record references a missing client or translator", ErrSnapshotInvalid)
	}
	if err != nil {
		log.Warn("snapshot import failed", slog.Any("error", err))
		return err
	}

	log.Info("snapshot imported",
		slog.Int("clients", len(snap.Clients)),
		slog.Int("translators", len(snap.Translators)),
		slog.Int("projects", len(snap.Projects)),
		slog.Int("accounts", len(snap.Accounts)),
		slog.Int("invites", len(snap.Invites)),
	)
	return nil
}
