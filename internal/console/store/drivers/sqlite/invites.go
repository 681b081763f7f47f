package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/cirrustranslate/console/internal/console/domain"
)

const inviteColumns = `token_hash, email, role, target_id, created_at, expires_at`

type invitesRepo struct {
	q querier
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO invites (`+inviteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)`,
		inv.TokenHash, inv.Email, string(inv.Role), inv.TargetID,
		toMillis(inv.CreatedAt), mapOptionalMillis(inv.ExpiresAt),
	)
	return mapConstraint(err)
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+inviteColumns+` FROM invites WHERE token_hash = ?`, hash)
	inv, err := scanInvite(row)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitesRepo) ListInvites(ctx context.Context) ([]domain.Invite, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+inviteColumns+` FROM invites ORDER BY created_at, token_hash`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invite
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invitesRepo) ConsumeInvite(ctx context.Context, hash string) (domain.Invite, error) {
	row := r.q.QueryRowContext(ctx,
		`DELETE FROM invites WHERE token_hash = ? RETURNING `+inviteColumns, hash)
	inv, err := scanInvite(row)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitesRepo) DeleteExpiredInvites(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM invites WHERE expires_at IS NOT NULL AND expires_at <= ?`, toMillis(now))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanInvite(s scanner) (domain.Invite, error) {
	var (
		inv       domain.Invite
		role      string
		createdAt int64
		expiresAt sql.NullInt64
	)
	if err := s.Scan(&inv.TokenHash, &inv.Email, &role, &inv.TargetID, &createdAt, &expiresAt); err != nil {
		return domain.Invite{}, err
	}
	inv.Role = domain.Role(role)
	inv.CreatedAt = fromMillis(createdAt)
	inv.ExpiresAt = mapNullMillisPtr(expiresAt)
	return inv, nil
}
