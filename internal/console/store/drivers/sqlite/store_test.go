package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/cirrustranslate/console/internal/console/domain"
	"github.com/cirrustranslate/console/internal/console/store"
	"github.com/cirrustranslate/console/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(DSN(filepath.Join(t.TempDir(), "console.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedClient(t *testing.T, s *Store) domain.Client {
	t.Helper()

	c := domain.Client{
		ID:            idx.New().String(),
		CompanyName:   "Acme",
		Email:         "finance@acme.test",
		RatePerMinute: 5,
		RatePerWord:   0.25,
		Status:        domain.StatusPending,
	}
	require.NoError(t, s.Clients().CreateClient(context.Background(), c))
	return c
}

func seedTranslator(t *testing.T, s *Store, name string) domain.Translator {
	t.Helper()

	tr := domain.Translator{
		ID:            idx.New().String(),
		Name:          name,
		Email:         name + "@example.test",
		RatePerWord:   domain.DefaultTranslatorRatePerWord,
		RatePerMinute: domain.DefaultTranslatorRatePerMinute,
		Status:        domain.StatusPending,
	}
	require.NoError(t, s.Translators().CreateTranslator(context.Background(), tr))
	return tr
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestAccountsUsernameIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	acc := domain.Account{
		ID:           idx.New().String(),
		Name:         "Admin",
		Username:     "Admin",
		Email:        "admin@example.test",
		PasswordHash: "hash",
		Role:         domain.RoleManager,
		Status:       domain.StatusActive,
	}
	require.NoError(t, s.Accounts().CreateAccount(ctx, acc))

	dup := acc
	dup.ID = idx.New().String()
	dup.Username = "admin"
	require.ErrorIs(t, s.Accounts().CreateAccount(ctx, dup), store.ErrAlreadyExists)

	got, err := s.Accounts().GetAccountByUsername(ctx, "ADMIN")
	require.NoError(t, err)
	require.Equal(t, acc.ID, got.ID)

	byEmail, err := s.Accounts().ListAccountsByLogin(ctx, "Admin@Example.test")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)

	n, err := s.Accounts().CountByRole(ctx, domain.RoleManager)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = s.Accounts().GetAccountByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestClientActivateAndRates(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	c := seedClient(t, s)

	require.NoError(t, s.Clients().ActivateClient(ctx, c.ID, "A. Finance", "555-0100"))
	require.NoError(t, s.Clients().UpdateClientRates(ctx, c.ID, 7, 0.3))

	got, err := s.Clients().GetClientByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, got.Status)
	require.Equal(t, "A. Finance", got.ContactName)
	require.Equal(t, "555-0100", got.Phone)
	require.Equal(t, 7.0, got.RatePerMinute)
	require.Equal(t, 0.3, got.RatePerWord)

	require.ErrorIs(t, s.Clients().ActivateClient(ctx, "missing", "x", ""), store.ErrNotFound)
}

func TestProjectsRoundTripAssignments(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	c := seedClient(t, s)
	t1 := seedTranslator(t, s, "ana")
	t2 := seedTranslator(t, s, "ben")

	p := domain.Project{
		ID:            idx.New().String(),
		Name:          "Launch video",
		Type:          domain.ProjectVideo,
		Status:        domain.JobUnassigned,
		ClientID:      c.ID,
		MinuteCount:   10,
		AppliedRate:   5,
		ClientQuote:   50,
		SourceLang:    domain.DefaultSourceLang,
		TargetLang:    domain.DefaultTargetLang,
		TranslatorIDs: []string{t2.ID, t1.ID},
	}
	require.NoError(t, s.Projects().CreateProject(ctx, p))

	got, err := s.Projects().GetProjectByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, []string{t2.ID, t1.ID}, got.TranslatorIDs)
	require.Equal(t, 50.0, got.ClientQuote)
	require.Empty(t, got.TranslatorQuotes)
	require.Nil(t, got.FinalizedAt)

	require.NoError(t, s.Projects().SetProjectTranslators(ctx, p.ID, []string{t1.ID}))
	byTranslator, err := s.Projects().ListProjectsByTranslator(ctx, t1.ID)
	require.NoError(t, err)
	require.Len(t, byTranslator, 1)
	require.Equal(t, []string{t1.ID}, byTranslator[0].TranslatorIDs)

	none, err := s.Projects().ListProjectsByTranslator(ctx, t2.ID)
	require.NoError(t, err)
	require.Empty(t, none)

	require.NoError(t, s.Projects().SetProjectStatus(ctx, p.ID, domain.JobUploaded))
	now := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, s.Projects().MarkProjectFinalized(ctx, p.ID, now))

	got, err = s.Projects().GetProjectByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, domain.JobUploaded, got.Status)
	require.NotNil(t, got.FinalizedAt)
	require.True(t, now.Equal(*got.FinalizedAt))

	byClient, err := s.Projects().ListProjectsByClient(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, byClient, 1)

	require.ErrorIs(t, s.Projects().SetProjectStatus(ctx, "missing", domain.JobNew), store.ErrNotFound)
}

func TestProjectsRequireExistingClient(t *testing.T) {
	s := newTestStore(t)

	err := s.Projects().CreateProject(context.Background(), domain.Project{
		ID:       idx.New().String(),
		Name:     "Orphan",
		Type:     domain.ProjectVideo,
		Status:   domain.JobUnassigned,
		ClientID: "missing",
	})
	require.ErrorIs(t, err, store.ErrInvalidReference)
}

func TestProjectsListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	c := seedClient(t, s)

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"first", "second", "third"} {
		require.NoError(t, s.Projects().CreateProject(ctx, domain.Project{
			ID:        idx.New().String(),
			Name:      name,
			Type:      domain.ProjectVideo,
			Status:    domain.JobUnassigned,
			ClientID:  c.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	all, err := s.Projects().ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "third", all[0].Name)
	require.Equal(t, "first", all[2].Name)
}

func TestConsumeInviteOnlyOnce(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	inv := domain.Invite{
		TokenHash: "fingerprint",
		Email:     "finance@acme.test",
		Role:      domain.RoleClient,
		TargetID:  "client-1",
	}
	require.NoError(t, s.Invites().CreateInvite(ctx, inv))
	require.ErrorIs(t, s.Invites().CreateInvite(ctx, inv), store.ErrAlreadyExists)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		consumed []string
	)
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.Invites().ConsumeInvite(ctx, inv.TokenHash)
			if err != nil {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			consumed = append(consumed, got.TargetID)
		}()
	}
	wg.Wait()
	require.Equal(t, []string{inv.TargetID}, consumed)

	_, err := s.Invites().GetInviteByTokenHash(ctx, inv.TokenHash)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteExpiredInvites(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Hour)
	require.NoError(t, s.Invites().CreateInvite(ctx, domain.Invite{TokenHash: "a", Email: "a@x.test", Role: domain.RoleClient, TargetID: "c", ExpiresAt: &past}))
	require.NoError(t, s.Invites().CreateInvite(ctx, domain.Invite{TokenHash: "b", Email: "b@x.test", Role: domain.RoleClient, TargetID: "c", ExpiresAt: &future}))
	require.NoError(t, s.Invites().CreateInvite(ctx, domain.Invite{TokenHash: "c", Email: "c@x.test", Role: domain.RoleTranslator, TargetID: "t"}))

	n, err := s.Invites().DeleteExpiredInvites(ctx, time.Now())
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	left, err := s.Invites().ListInvites(ctx)
	require.NoError(t, err)
	require.Len(t, left, 2)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.Invites().CreateInvite(ctx, domain.Invite{TokenHash: "tok", Email: "a@x.test", Role: domain.RoleClient, TargetID: "c"}))

	err := s.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Invites().ConsumeInvite(ctx, "tok"); err != nil {
			return err
		}
		return store.ErrAlreadyExists
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = s.Invites().GetInviteByTokenHash(ctx, "tok")
	require.NoError(t, err)
}
