package sqlite

import (
	"context"

	"github.com/cirrustranslate/console/internal/console/domain"
)

const accountColumns = `id, name, username, email, phone, password_hash, role, status, record_id, created_at`

type accountsRepo struct {
	q querier
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, a.Username, a.Email, a.Phone, a.PasswordHash,
		string(a.Role), string(a.Status), a.RecordID, toMillis(a.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	a, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) GetAccountByUsername(ctx context.Context, username string) (domain.Account, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE lower(username) = lower(?)`, username)
	a, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) ListAccountsByLogin(ctx context.Context, login string) ([]domain.Account, error) {
	return r.list(ctx, `
		SELECT `+accountColumns+` FROM accounts
		WHERE lower(username) = lower(?) OR lower(email) = lower(?)
		ORDER BY created_at, id`, login, login)
}

func (r *accountsRepo) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return r.list(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY created_at, id`)
}

func (r *accountsRepo) CountByRole(ctx context.Context, role domain.Role) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts WHERE role = ?`, string(role)).Scan(&n)
	return n, err
}

func (r *accountsRepo) list(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAccount(s scanner) (domain.Account, error) {
	var (
		a         domain.Account
		role      string
		status    string
		createdAt int64
	)
	err := s.Scan(&a.ID, &a.Name, &a.Username, &a.Email, &a.Phone, &a.PasswordHash,
		&role, &status, &a.RecordID, &createdAt)
	if err != nil {
		return domain.Account{}, err
	}
	a.Role = domain.Role(role)
	a.Status = domain.RecordStatus(status)
	a.CreatedAt = fromMillis(createdAt)
	return a, nil
}
