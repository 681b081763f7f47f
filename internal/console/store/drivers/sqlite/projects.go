package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cirrustranslate/console/internal/console/domain"
	"github.com/cirrustranslate/console/internal/console/store"
)

const projectColumns = `p.id, p.name, p.title, p.type, p.status, p.client_id, p.word_count, p.minute_count,
	p.drive_link, p.applied_rate, p.source_lang, p.target_lang, p.client_quote, p.translator_quotes,
	p.deadline, p.description, p.created_at, p.updated_at, p.finalized_at`

type projectsRepo struct {
	q querier
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	quotes, err := encodeQuotes(p.TranslatorQuotes)
	if err != nil {
		return err
	}

	created := toMillis(p.CreatedAt)
	_, err = r.q.ExecContext(ctx, `
		INSERT INTO projects (
			id, name, title, type, status, client_id, word_count, minute_count,
			drive_link, applied_rate, source_lang, target_lang, client_quote, translator_quotes,
			deadline, description, created_at, updated_at, finalized_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Title, string(p.Type), string(p.Status), p.ClientID, p.WordCount, p.MinuteCount,
		p.DriveLink, p.AppliedRate, p.SourceLang, p.TargetLang, p.ClientQuote, quotes,
		p.Deadline, p.Description, created, created, mapOptionalMillis(p.FinalizedAt),
	)
	if err != nil {
		return mapConstraint(err)
	}

	return r.writeAssignments(ctx, p.ID, p.TranslatorIDs)
}

func (r *projectsRepo) GetProjectByID(ctx context.Context, id string) (domain.Project, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects p WHERE p.id = ?`, id)
	p, err := scanProject(row)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}

	p.TranslatorIDs, err = r.assignments(ctx, p.ID)
	if err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

func (r *projectsRepo) UpdateProject(ctx context.Context, p domain.Project) error {
	return requireAffected(r.q.ExecContext(ctx, `
		UPDATE projects
		SET name = ?, title = ?, type = ?, client_id = ?, word_count = ?, minute_count = ?,
			drive_link = ?, applied_rate = ?, source_lang = ?, target_lang = ?, client_quote = ?,
			deadline = ?, description = ?, updated_at = ?
		WHERE id = ?`,
		p.Name, p.Title, string(p.Type), p.ClientID, p.WordCount, p.MinuteCount,
		p.DriveLink, p.AppliedRate, p.SourceLang, p.TargetLang, p.ClientQuote,
		p.Deadline, p.Description, toMillis(time.Now()), p.ID,
	))
}

func (r *projectsRepo) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects p ORDER BY p.created_at DESC, p.id DESC`)
}

func (r *projectsRepo) ListProjectsByClient(ctx context.Context, clientID string) ([]domain.Project, error) {
	return r.list(ctx, `
		SELECT `+projectColumns+` FROM projects p
		WHERE p.client_id = ?
		ORDER BY p.created_at DESC, p.id DESC`, clientID)
}

func (r *projectsRepo) ListProjectsByTranslator(ctx context.Context, translatorID string) ([]domain.Project, error) {
	return r.list(ctx, `
		SELECT `+projectColumns+` FROM projects p
		JOIN project_translators pt ON pt.project_id = p.id
		WHERE pt.translator_id = ?
		ORDER BY p.created_at DESC, p.id DESC`, translatorID)
}

func (r *projectsRepo) SetProjectStatus(ctx context.Context, id string, status domain.JobStatus) error {
	return requireAffected(r.q.ExecContext(ctx,
		`UPDATE projects SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), toMillis(time.Now()), id,
	))
}

func (r *projectsRepo) SetProjectTranslators(ctx context.Context, id string, translatorIDs []string) error {
	err := requireAffected(r.q.ExecContext(ctx,
		`UPDATE projects SET updated_at = ? WHERE id = ?`, toMillis(time.Now()), id))
	if err != nil {
		return err
	}

	if _, err := r.q.ExecContext(ctx, `DELETE FROM project_translators WHERE project_id = ?`, id); err != nil {
		return err
	}
	return r.writeAssignments(ctx, id, translatorIDs)
}

func (r *projectsRepo) MarkProjectFinalized(ctx context.Context, id string, at time.Time) error {
	return requireAffected(r.q.ExecContext(ctx,
		`UPDATE projects SET finalized_at = ?, updated_at = ? WHERE id = ?`,
		toMillis(at), toMillis(time.Now()), id,
	))
}

func (r *projectsRepo) writeAssignments(ctx context.Context, projectID string, translatorIDs []string) error {
	for i, tid := range translatorIDs {
		_, err := r.q.ExecContext(ctx, `
			INSERT INTO project_translators (project_id, translator_id, position)
			VALUES (?, ?, ?)`, projectID, tid, i)
		if err != nil {
			return mapConstraint(err)
		}
	}
	return nil
}

func (r *projectsRepo) assignments(ctx context.Context, projectID string) ([]string, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT translator_id FROM project_translators
		WHERE project_id = ?
		ORDER BY position`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// list reads the projects first and loads assignments after the cursor is
// closed, so it is safe on a single transaction connection.
func (r *projectsRepo) list(ctx context.Context, query string, args ...any) ([]domain.Project, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	var out []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	_ = rows.Close()

	for i := range out {
		out[i].TranslatorIDs, err = r.assignments(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func scanProject(s scanner) (domain.Project, error) {
	var (
		p                  domain.Project
		typ, status        string
		quotes             string
		created, updatedAt int64
		finalized          sql.NullInt64
	)
	err := s.Scan(&p.ID, &p.Name, &p.Title, &typ, &status, &p.ClientID, &p.WordCount, &p.MinuteCount,
		&p.DriveLink, &p.AppliedRate, &p.SourceLang, &p.TargetLang, &p.ClientQuote, &quotes,
		&p.Deadline, &p.Description, &created, &updatedAt, &finalized)
	if err != nil {
		return domain.Project{}, err
	}

	p.Type = domain.ProjectType(typ)
	p.Status = domain.JobStatus(status)
	p.CreatedAt = fromMillis(created)
	p.UpdatedAt = fromMillis(updatedAt)
	p.FinalizedAt = mapNullMillisPtr(finalized)
	p.TranslatorQuotes, err = decodeQuotes(quotes)
	if err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

func encodeQuotes(m map[string]float64) (string, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode translator quotes: %w", err)
	}
	return string(b), nil
}

func decodeQuotes(s string) (map[string]float64, error) {
	m := map[string]float64{}
	if s == "" {
		return m, nil
	}
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, fmt.Errorf("decode translator quotes: %w", err)
	}
	return m, nil
}

var _ store.Projects = (*projectsRepo)(nil)
