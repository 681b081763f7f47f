package sqlite

import (
	"context"
	"time"

	"github.com/cirrustranslate/console/internal/console/domain"
)

const translatorColumns = `id, name, email, phone, is_deaf, rate_per_word, rate_per_minute, status, created_at, updated_at`

type translatorsRepo struct {
	q querier
}

func (r *translatorsRepo) CreateTranslator(ctx context.Context, t domain.Translator) error {
	created := toMillis(t.CreatedAt)
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO translators (`+translatorColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Email, t.Phone, t.IsDeaf,
		t.RatePerWord, t.RatePerMinute, string(t.Status), created, created,
	)
	return mapConstraint(err)
}

func (r *translatorsRepo) GetTranslatorByID(ctx context.Context, id string) (domain.Translator, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+translatorColumns+` FROM translators WHERE id = ?`, id)
	t, err := scanTranslator(row)
	if err != nil {
		return domain.Translator{}, mapNotFound(err)
	}
	return t, nil
}

func (r *translatorsRepo) ListTranslators(ctx context.Context) ([]domain.Translator, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+translatorColumns+` FROM translators ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Translator
	for rows.Next() {
		t, err := scanTranslator(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *translatorsRepo) ActivateTranslator(ctx context.Context, id, name, phone string) error {
	return requireAffected(r.q.ExecContext(ctx, `
		UPDATE translators
		SET status = ?, name = ?, phone = ?, updated_at = ?
		WHERE id = ?`,
		string(domain.StatusActive), name, phone, toMillis(time.Now()), id,
	))
}

func (r *translatorsRepo) UpdateTranslatorRates(ctx context.Context, id string, perMinute, perWord float64) error {
	return requireAffected(r.q.ExecContext(ctx, `
		UPDATE translators
		SET rate_per_minute = ?, rate_per_word = ?, updated_at = ?
		WHERE id = ?`,
		perMinute, perWord, toMillis(time.Now()), id,
	))
}

func scanTranslator(s scanner) (domain.Translator, error) {
	var (
		t                  domain.Translator
		status             string
		created, updatedAt int64
	)
	err := s.Scan(&t.ID, &t.Name, &t.Email, &t.Phone, &t.IsDeaf,
		&t.RatePerWord, &t.RatePerMinute, &status, &created, &updatedAt)
	if err != nil {
		return domain.Translator{}, err
	}
	t.Status = domain.RecordStatus(status)
	t.CreatedAt = fromMillis(created)
	t.UpdatedAt = fromMillis(updatedAt)
	return t, nil
}
