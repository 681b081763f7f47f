package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cirrustranslate/console/internal/console/domain"
	"github.com/cirrustranslate/console/internal/console/store"
	"github.com/cirrustranslate/console/pkg/idx"
	"github.com/cirrustranslate/console/pkg/slogx"
	"github.com/cirrustranslate/console/pkg/validx"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrForbidden       = errors.New("operation not permitted for this account")
)

type ProjectService struct {
	Store store.Store
}

// Create validates draft and saves a new UNASSIGNED project with its client
// quote frozen against the client's current rates.
func (s *ProjectService) Create(ctx context.Context, draft domain.ProjectDraft) (domain.Project, error) {
	log := slogx.FromContext(ctx)

	draft = draft.Normalize()
	if err := validx.Struct(draft); err != nil {
		return domain.Project{}, err
	}

	client, err := s.client(ctx, draft.ClientID)
	if err != nil {
		return domain.Project{}, err
	}
	if err := checkQuotable(draft, client); err != nil {
		return domain.Project{}, err
	}

	now := time.Now().UTC()
	p := domain.Project{
		ID:               idx.New().String(),
		Status:           domain.JobUnassigned,
		TranslatorIDs:    []string{},
		TranslatorQuotes: map[string]float64{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	draft.Apply(&p, client)

	if err := s.Store.Projects().CreateProject(ctx, p); err != nil {
		log.Error("failed to create project", slog.Any("error", err))
		return domain.Project{}, err
	}

	log.Info("project created",
		slog.String("project_id", p.ID),
		slog.String("client_id", p.ClientID),
		slog.Float64("client_quote", p.ClientQuote),
	)
	return p, nil
}

// Update rewrites the project's editable fields and recomputes the quote
// with the client's rate at the time of the edit.
func (s *ProjectService) Update(ctx context.Context, id string, draft domain.ProjectDraft) (domain.Project, error) {
	draft = draft.Normalize()
	if err := validx.Struct(draft); err != nil {
		return domain.Project{}, err
	}

	p, err := s.project(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	client, err := s.client(ctx, draft.ClientID)
	if err != nil {
		return domain.Project{}, err
	}
	if err := checkQuotable(draft, client); err != nil {
		return domain.Project{}, err
	}

	draft.Apply(&p, client)
	if err := s.Store.Projects().UpdateProject(ctx, p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Project{}, ErrProjectNotFound
		}
		return domain.Project{}, err
	}

	slogx.FromContext(ctx).Info("project updated", slog.String("project_id", id))
	return s.project(ctx, id)
}

// checkQuotable rejects document projects for clients billed by the minute
// only; their quote would silently freeze at zero.
func checkQuotable(draft domain.ProjectDraft, client domain.Client) error {
	if draft.Type == domain.ProjectDocument && client.RatePerWord <= 0 {
		return validx.Field("type", "client has no per-word rate; use a video project or set the client's word rate")
	}
	return nil
}

// AssignTranslators replaces the project's translator list. Duplicate ids
// are collapsed; every id must name an existing translator.
func (s *ProjectService) AssignTranslators(ctx context.Context, id string, translatorIDs []string) (domain.Project, error) {
	ids := make([]string, 0, len(translatorIDs))
	seen := make(map[string]struct{}, len(translatorIDs))
	for _, tid := range translatorIDs {
		if _, ok := seen[tid]; ok {
			continue
		}
		seen[tid] = struct{}{}
		ids = append(ids, tid)
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, tid := range ids {
			if _, err := tx.Translators().GetTranslatorByID(ctx, tid); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return ErrTranslatorNotFound
				}
				return err
			}
		}
		return tx.Projects().SetProjectTranslators(ctx, id, ids)
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.Project{}, ErrProjectNotFound
	}
	if err != nil {
		return domain.Project{}, err
	}

	slogx.FromContext(ctx).Info("project translators assigned",
		slog.String("project_id", id),
		slog.Int("count", len(ids)),
	)
	return s.project(ctx, id)
}

// List returns the projects actor may see, newest first.
func (s *ProjectService) List(ctx context.Context, actor domain.Actor) ([]domain.Project, error) {
	switch actor.Role {
	case domain.RoleManager:
		return s.Store.Projects().ListProjects(ctx)
	case domain.RoleClient:
		return s.Store.Projects().ListProjectsByClient(ctx, actor.RecordID)
	case domain.RoleTranslator:
		return s.Store.Projects().ListProjectsByTranslator(ctx, actor.RecordID)
	}
	return nil, ErrForbidden
}

// Get returns the project if actor may see it. Invisible projects report
// ErrProjectNotFound.
func (s *ProjectService) Get(ctx context.Context, actor domain.Actor, id string) (domain.Project, error) {
	p, err := s.project(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	if !visibleTo(actor, p) {
		return domain.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func visibleTo(actor domain.Actor, p domain.Project) bool {
	switch actor.Role {
	case domain.RoleManager:
		return true
	case domain.RoleClient:
		return actor.RecordID != "" && p.ClientID == actor.RecordID
	case domain.RoleTranslator:
		return p.AssignedTo(actor.RecordID)
	}
	return false
}

func (s *ProjectService) project(ctx context.Context, id string) (domain.Project, error) {
	p, err := s.Store.Projects().GetProjectByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Project{}, ErrProjectNotFound
	}
	return p, err
}

func (s *ProjectService) client(ctx context.Context, id string) (domain.Client, error) {
	c, err := s.Store.Clients().GetClientByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Client{}, ErrClientNotFound
	}
	return c, err
}
