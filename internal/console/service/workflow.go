package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cirrustranslate/console/internal/console/domain"
	"github.com/cirrustranslate/console/internal/console/store"
	"github.com/cirrustranslate/console/pkg/slogx"
)

var (
	ErrInvalidStatus      = errors.New("status is not a selectable workflow step")
	ErrProjectNotUploaded = errors.New("project must be UPLOADED before it can be finalized")
)

// WorkflowService moves projects through the production tracker. Any step
// may be chosen at any time; only finalization has a precondition.
type WorkflowService struct {
	Store store.Store
}

// Steps lists the selectable statuses in display order.
func (s *WorkflowService) Steps() []domain.JobStatus {
	return domain.WorkflowSteps()
}

func (s *WorkflowService) SetStatus(ctx context.Context, actor domain.Actor, id string, status domain.JobStatus) (domain.Project, error) {
	log := slogx.FromContext(ctx)

	if !status.Selectable() {
		return domain.Project{}, ErrInvalidStatus
	}

	p, err := s.authorize(ctx, actor, id)
	if err != nil {
		return domain.Project{}, err
	}

	if err := s.Store.Projects().SetProjectStatus(ctx, id, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Project{}, ErrProjectNotFound
		}
		log.Error("failed to set project status", slog.Any("error", err))
		return domain.Project{}, err
	}

	log.Info("project status changed",
		slog.String("project_id", id),
		slog.String("from", string(p.Status)),
		slog.String("to", string(status)),
	)
	p.Status = status
	return p, nil
}

// Finalize stamps the completion time on an UPLOADED project.
func (s *WorkflowService) Finalize(ctx context.Context, actor domain.Actor, id string) (domain.Project, error) {
	p, err := s.authorize(ctx, actor, id)
	if err != nil {
		return domain.Project{}, err
	}
	if !p.Status.Finalizable() {
		return domain.Project{}, ErrProjectNotUploaded
	}

	at := time.Now().UTC().Truncate(time.Millisecond)
	if err := s.Store.Projects().MarkProjectFinalized(ctx, id, at); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Project{}, ErrProjectNotFound
		}
		return domain.Project{}, err
	}

	slogx.FromContext(ctx).Info("project finalized", slog.String("project_id", id))
	p.FinalizedAt = &at
	return p, nil
}

// authorize loads the project and checks actor may drive its workflow:
// managers always, translators only on their assignments, clients never.
func (s *WorkflowService) authorize(ctx context.Context, actor domain.Actor, id string) (domain.Project, error) {
	p, err := s.Store.Projects().GetProjectByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Project{}, ErrProjectNotFound
	}
	if err != nil {
		return domain.Project{}, err
	}

	if !visibleTo(actor, p) {
		return domain.Project{}, ErrProjectNotFound
	}
	switch actor.Role {
	case domain.RoleManager, domain.RoleTranslator:
		return p, nil
	}
	return domain.Project{}, ErrForbidden
}
