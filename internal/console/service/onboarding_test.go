package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cirrustranslate/console/internal/console/domain"
	"github.com/cirrustranslate/console/pkg/validx"
	"github.com/stretchr/testify/require"
)

func TestBootstrap(t *testing.T) {
	t.Parallel()

	t.Run("creates the manager once", func(t *testing.T) {
		h := newHarness(t)
		ctx := context.Background()

		done, err := h.bootstrap.IsBootstrapped(ctx)
		require.NoError(t, err)
		require.False(t, done)

		admin := h.setupAdmin(t)
		require.Equal(t, domain.RoleManager, admin.Role)
		require.Equal(t, domain.StatusActive, admin.Status)
		require.NotEqual(t, "correct-horse", admin.PasswordHash)

		done, err = h.bootstrap.IsBootstrapped(ctx)
		require.NoError(t, err)
		require.True(t, done)

		_, err = h.bootstrap.Bootstrap(ctx, "", domain.AdminSetup{
			Name: "Second", Email: "two@agency.test", Username: "second", Password: "another-pass",
		})
		require.ErrorIs(t, err, ErrBootstrapAlready)
	})

	t.Run("rejects a wrong setup token", func(t *testing.T) {
		h := newHarness(t)
		h.bootstrap.Token = "let-me-in"

		_, err := h.bootstrap.Bootstrap(context.Background(), "nope", domain.AdminSetup{
			Name: "Admin", Email: "admin@agency.test", Username: "admin", Password: "correct-horse",
		})
		require.ErrorIs(t, err, ErrBootstrapUnauthorized)

		_, err = h.bootstrap.Bootstrap(context.Background(), "let-me-in", domain.AdminSetup{
			Name: "Admin", Email: "admin@agency.test", Username: "admin", Password: "correct-horse",
		})
		require.NoError(t, err)
	})

	t.Run("validates the form", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.bootstrap.Bootstrap(context.Background(), "", domain.AdminSetup{
			Name: "Admin", Email: "not-an-email", Username: "ad", Password: "short",
		})
		var verr *validx.Error
		require.ErrorAs(t, err, &verr)
		require.Contains(t, verr.Details, "email")
		require.Contains(t, verr.Details, "username")
		require.Contains(t, verr.Details, "password")
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	admin := h.setupAdmin(t)

	t.Run("by username, any case", func(t *testing.T) {
		sess, err := h.sessions.Login(ctx, "ADMIN", "correct-horse")
		require.NoError(t, err)
		require.Equal(t, admin.ID, sess.Account.ID)

		claims, err := h.verifier.Verify(sess.Token)
		require.NoError(t, err)
		actor := ActorFromClaims(claims)
		require.Equal(t, admin.ID, actor.AccountID)
		require.Equal(t, domain.RoleManager, actor.Role)
		require.Empty(t, actor.RecordID)
	})

	t.Run("by email", func(t *testing.T) {
		sess, err := h.sessions.Login(ctx, "admin@agency.test", "correct-horse")
		require.NoError(t, err)
		require.Equal(t, admin.ID, sess.Account.ID)
		require.True(t, sess.ExpiresAt.After(time.Now()))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := h.sessions.Login(ctx, "admin", "wrong-horse")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown login", func(t *testing.T) {
		_, err := h.sessions.Login(ctx, "ghost", "correct-horse")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("blank input", func(t *testing.T) {
		_, err := h.sessions.Login(ctx, "  ", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestClientOnboarding(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	h.setupAdmin(t)

	inv := h.inviteClient(t, 5)
	require.Equal(t, domain.StatusPending, inv.Client.Status)
	require.Equal(t, domain.RoleClient, inv.Invite.Role)
	require.Equal(t, inv.Client.ID, inv.Invite.TargetID)
	require.NotEmpty(t, inv.Invite.Token)

	link, err := url.Parse(inv.URL)
	require.NoError(t, err)
	require.Equal(t, inv.Invite.Token, link.Query().Get(InviteParam))
	require.True(t, strings.HasPrefix(inv.URL, testPublicURL))

	resolved, err := h.invites.Resolve(ctx, inv.Invite.Token)
	require.NoError(t, err)
	require.Equal(t, "finance@acme.test", resolved.Email)
	require.Equal(t, domain.RoleClient, resolved.Role)

	acc, err := h.invites.Redeem(ctx, inv.Invite.Token, registration("A. Finance", "afinance"))
	require.NoError(t, err)
	require.Equal(t, domain.RoleClient, acc.Role)
	require.Equal(t, inv.Client.ID, acc.RecordID)
	require.Equal(t, "finance@acme.test", acc.Email)

	client, err := h.clients.Get(ctx, inv.Client.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, client.Status)
	require.Equal(t, "A. Finance", client.ContactName)
	require.Equal(t, "555-0100", client.Phone)

	// The invite is gone once used.
	_, err = h.invites.Resolve(ctx, inv.Invite.Token)
	require.ErrorIs(t, err, ErrInviteNotFound)
	pending, err := h.invites.List(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)

	sess, err := h.sessions.Login(ctx, "finance@acme.test", "s3cret-pass")
	require.NoError(t, err)
	require.Equal(t, acc.ID, sess.Account.ID)
}

func TestTranslatorOnboardingUsesDefaultRates(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()

	inv := h.inviteTranslator(t, "dana")
	require.Equal(t, domain.DefaultTranslatorRatePerWord, inv.Translator.RatePerWord)
	require.Equal(t, domain.DefaultTranslatorRatePerMinute, inv.Translator.RatePerMinute)

	acc, err := h.invites.Redeem(ctx, inv.Invite.Token, registration("Dana Reyes", "dana"))
	require.NoError(t, err)
	require.Equal(t, domain.RoleTranslator, acc.Role)

	tr, err := h.translators.Get(ctx, inv.Translator.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, tr.Status)
	require.Equal(t, "Dana Reyes", tr.Name)

	updated, err := h.translators.UpdateRates(ctx, tr.ID, domain.Rates{RatePerMinute: 11, RatePerWord: 0.3})
	require.NoError(t, err)
	require.Equal(t, 11.0, updated.RatePerMinute)
	require.Equal(t, 0.3, updated.RatePerWord)
}

func TestRedeemTwiceIsRejected(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	inv := h.inviteClient(t, 5)

	_, err := h.invites.Redeem(ctx, inv.Invite.Token, registration("A. Finance", "afinance"))
	require.NoError(t, err)

	_, err = h.invites.Redeem(ctx, inv.Invite.Token, registration("Someone Else", "someone"))
	require.ErrorIs(t, err, ErrInviteNotFound)

	_, err = h.sessions.Login(ctx, "someone", "s3cret-pass")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestConcurrentRedeemCreatesOneAccount(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	h.setupAdmin(t)
	inv := h.inviteClient(t, 5)

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			name := fmt.Sprintf("contact%d", i)
			_, errs[i] = h.invites.Redeem(ctx, inv.Invite.Token, registration(name, name))
		}()
	}
	close(start)
	wg.Wait()

	var ok, notFound int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrInviteNotFound):
			notFound++
		default:
			t.Errorf("unexpected redeem error: %v", err)
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, attempts-1, notFound)

	accounts, err := h.store.Accounts().ListAccounts(ctx)
	require.NoError(t, err)
	var members int
	for _, acc := range accounts {
		if acc.Role != domain.RoleManager {
			members++
			require.Equal(t, inv.Client.ID, acc.RecordID)
		}
	}
	require.Equal(t, 1, members)
}

func TestRedeemWithoutTermsChangesNothing(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	inv := h.inviteClient(t, 5)

	reg := registration("A. Finance", "afinance")
	reg.AcceptedTerms = false
	_, err := h.invites.Redeem(ctx, inv.Invite.Token, reg)
	require.ErrorIs(t, err, ErrTermsNotAccepted)

	_, err = h.invites.Resolve(ctx, inv.Invite.Token)
	require.NoError(t, err)

	client, err := h.clients.Get(ctx, inv.Client.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, client.Status)
}

func TestRedeemWithTakenUsernameRollsBack(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	h.setupAdmin(t)
	inv := h.inviteClient(t, 5)

	_, err := h.invites.Redeem(ctx, inv.Invite.Token, registration("A. Finance", "Admin"))
	require.ErrorIs(t, err, ErrUsernameTaken)

	// Invite still redeemable and the client still pending.
	_, err = h.invites.Resolve(ctx, inv.Invite.Token)
	require.NoError(t, err)
	client, err := h.clients.Get(ctx, inv.Client.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, client.Status)

	_, err = h.invites.Redeem(ctx, inv.Invite.Token, registration("A. Finance", "afinance"))
	require.NoError(t, err)
}

func TestRedeemValidatesRegistration(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	inv := h.inviteClient(t, 5)

	reg := registration("", "ab")
	_, err := h.invites.Redeem(context.Background(), inv.Invite.Token, reg)
	var verr *validx.Error
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Details, "name")
	require.Contains(t, verr.Details, "username")
}

func TestExpiredInvite(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	h.invites.TTL = 24 * time.Hour
	h.invites.Clock = func() time.Time { return now }

	inv := h.inviteClient(t, 5)
	require.NotNil(t, inv.Invite.ExpiresAt)

	_, err := h.invites.Resolve(ctx, inv.Invite.Token)
	require.NoError(t, err)

	now = now.Add(25 * time.Hour)
	_, err = h.invites.Resolve(ctx, inv.Invite.Token)
	require.ErrorIs(t, err, ErrInviteNotFound)

	_, err = h.invites.Redeem(ctx, inv.Invite.Token, registration("A. Finance", "afinance"))
	require.ErrorIs(t, err, ErrInviteNotFound)
}

func TestInviteRules(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()

	_, err := h.invites.Issue(ctx, "boss@agency.test", domain.RoleManager, "x")
	require.ErrorIs(t, err, ErrInvalidInviteRole)

	_, err = h.invites.Issue(ctx, "who@acme.test", domain.RoleClient, "missing")
	require.ErrorIs(t, err, ErrInviteTargetNotFound)

	_, err = h.invites.Resolve(ctx, "")
	require.ErrorIs(t, err, ErrInviteNotFound)
	_, err = h.invites.Resolve(ctx, "never-issued")
	require.ErrorIs(t, err, ErrInviteNotFound)

	// A second invite for the same record is independent of the first.
	inv := h.inviteClient(t, 5)
	again, err := h.invites.Issue(ctx, inv.Client.Email, domain.RoleClient, inv.Client.ID)
	require.NoError(t, err)
	require.NotEqual(t, inv.Invite.Token, again.Invite.Token)

	pending, err := h.invites.List(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, p := range pending {
		require.Empty(t, p.Token)
	}
}

func TestClientRatesUpdate(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	inv := h.inviteClient(t, 5)

	c, err := h.clients.UpdateRates(ctx, inv.Client.ID, domain.Rates{RatePerMinute: 7, RatePerWord: 0.5})
	require.NoError(t, err)
	require.Equal(t, 7.0, c.RatePerMinute)

	_, err = h.clients.UpdateRates(ctx, inv.Client.ID, domain.Rates{RatePerMinute: -1})
	var verr *validx.Error
	require.ErrorAs(t, err, &verr)

	_, err = h.clients.UpdateRates(ctx, "missing", domain.Rates{})
	require.ErrorIs(t, err, ErrClientNotFound)

	_, err = h.clients.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrClientNotFound)
}
