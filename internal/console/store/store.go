package store

import (
	"context"
	"errors"
	"time"

	"github.com/cirrustranslate/console/internal/console/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrInvalidReference reports a write pointing at a record that does
	// not exist.
	ErrInvalidReference = errors.New("store: invalid reference")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose one sub-repository per record type. Sub-repositories taken from a Tx
// run inside that transaction; nested transactions are not supported.
type Store interface {
	Accounts() Accounts
	Clients() Clients
	Translators() Translators
	Projects() Projects
	Invites() Invites

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// CreateAccount inserts a new account. Usernames are unique
	// (case-insensitive); a clash returns ErrAlreadyExists.
	CreateAccount(ctx context.Context, a domain.Account) error

	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByUsername matches case-insensitively.
	GetAccountByUsername(ctx context.Context, username string) (domain.Account, error)

	// ListAccountsByLogin returns every account whose username or email equals
	// login case-insensitively, oldest first.
	ListAccountsByLogin(ctx context.Context, login string) ([]domain.Account, error)

	// ListAccounts returns all registered accounts, oldest first.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// CountByRole returns the number of accounts holding role.
	CountByRole(ctx context.Context, role domain.Role) (int, error)
}

type Clients interface {
	CreateClient(ctx context.Context, c domain.Client) error
	GetClientByID(ctx context.Context, id string) (domain.Client, error)

	// ListClients returns all clients, oldest first.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// ActivateClient flips status to active and copies the registering
	// contact's name and phone.
	ActivateClient(ctx context.Context, id, contactName, phone string) error

	UpdateClientRates(ctx context.Context, id string, perMinute, perWord float64) error
}

type Translators interface {
	CreateTranslator(ctx context.Context, t domain.Translator) error
	GetTranslatorByID(ctx context.Context, id string) (domain.Translator, error)

	// ListTranslators returns all translators, oldest first.
	ListTranslators(ctx context.Context) ([]domain.Translator, error)

	// ActivateTranslator flips status to active and copies name and phone.
	ActivateTranslator(ctx context.Context, id, name, phone string) error

	UpdateTranslatorRates(ctx context.Context, id string, perMinute, perWord float64) error
}

type Projects interface {
	// CreateProject inserts a project together with its translator assignments.
	CreateProject(ctx context.Context, p domain.Project) error

	GetProjectByID(ctx context.Context, id string) (domain.Project, error)

	// UpdateProject rewrites the editable fields and the frozen quote.
	// Status, assignments and finalization are left alone.
	UpdateProject(ctx context.Context, p domain.Project) error

	// ListProjects returns all projects, newest first.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	ListProjectsByClient(ctx context.Context, clientID string) ([]domain.Project, error)
	ListProjectsByTranslator(ctx context.Context, translatorID string) ([]domain.Project, error)

	SetProjectStatus(ctx context.Context, id string, status domain.JobStatus) error

	// SetProjectTranslators replaces the assignment list.
	SetProjectTranslators(ctx context.Context, id string, translatorIDs []string) error

	MarkProjectFinalized(ctx context.Context, id string, at time.Time) error
}

type Invites interface {
	// CreateInvite writes a new invite keyed by the token fingerprint.
	CreateInvite(ctx context.Context, inv domain.Invite) error

	GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error)

	// ListInvites returns every outstanding invite, oldest first.
	ListInvites(ctx context.Context) ([]domain.Invite, error)

	// ConsumeInvite deletes the invite and returns what was deleted, in one
	// statement. A missing invite returns ErrNotFound, which makes it safe to
	// race two redemptions of the same token.
	ConsumeInvite(ctx context.Context, hash string) (domain.Invite, error)

	// DeleteExpiredInvites removes invites whose expiry is at or before now
	// and reports how many were removed.
	DeleteExpiredInvites(ctx context.Context, now time.Time) (int64, error)
}
