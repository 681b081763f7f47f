package sqlite

import (
	"context"
	"time"

	"github.com/cirrustranslate/console/internal/console/domain"
)

const clientColumns = `id, company_name, contact_name, email, phone, rate_per_word, rate_per_minute, status, created_at, updated_at`

type clientsRepo struct {
	q querier
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	created := toMillis(c.CreatedAt)
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO clients (`+clientColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.CompanyName, c.ContactName, c.Email, c.Phone,
		c.RatePerWord, c.RatePerMinute, string(c.Status), created, created,
	)
	return mapConstraint(err)
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id string) (domain.Client, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)
	c, err := scanClient(row)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *clientsRepo) ActivateClient(ctx context.Context, id, contactName, phone string) error {
	return requireAffected(r.q.ExecContext(ctx, `
		UPDATE clients
		SET status = ?, contact_name = ?, phone = ?, updated_at = ?
		WHERE id = ?`,
		string(domain.StatusActive), contactName, phone, toMillis(time.Now()), id,
	))
}

func (r *clientsRepo) UpdateClientRates(ctx context.Context, id string, perMinute, perWord float64) error {
	return requireAffected(r.q.ExecContext(ctx, `
		UPDATE clients
		SET rate_per_minute = ?, rate_per_word = ?, updated_at = ?
		WHERE id = ?`,
		perMinute, perWord, toMillis(time.Now()), id,
	))
}

func scanClient(s scanner) (domain.Client, error) {
	var (
		c                  domain.Client
		status             string
		created, updatedAt int64
	)
	err := s.Scan(&c.ID, &c.CompanyName, &c.ContactName, &c.Email, &c.Phone,
		&c.RatePerWord, &c.RatePerMinute, &status, &created, &updatedAt)
	if err != nil {
		return domain.Client{}, err
	}
	c.Status = domain.RecordStatus(status)
	c.CreatedAt = fromMillis(created)
	c.UpdatedAt = fromMillis(updatedAt)
	return c, nil
}
