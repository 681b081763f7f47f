package service

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"path/filepath"
	"testing"

	"github.com/cirrustranslate/console/internal/console/domain"
	"github.com/cirrustranslate/console/internal/console/store/drivers/sqlite"
	"github.com/cirrustranslate/console/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testPublicURL = "https://console.example.test/"

// harness wires every service over one fresh SQLite file.
type harness struct {
	store       *sqlite.Store
	bootstrap   *BootstrapService
	sessions    *SessionService
	invites     *InviteService
	clients     *ClientService
	translators *TranslatorService
	projects    *ProjectService
	workflow    *WorkflowService
	dashboard   *DashboardService
	snapshots   *SnapshotService
	verifier    jwtx.Verifier
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "console.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("test", key)
	require.NoError(t, err)
	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)

	invites := &InviteService{Store: st, PublicURL: testPublicURL}
	return &harness{
		store:       st,
		bootstrap:   &BootstrapService{Store: st},
		sessions:    &SessionService{Store: st, Signer: signer, Issuer: "console-test"},
		invites:     invites,
		clients:     &ClientService{Store: st, Invites: invites},
		translators: &TranslatorService{Store: st, Invites: invites},
		projects:    &ProjectService{Store: st},
		workflow:    &WorkflowService{Store: st},
		dashboard:   &DashboardService{Store: st},
		snapshots:   &SnapshotService{Store: st},
		verifier:    jwtx.NewVerifierEdDSA(keys, "console-test", nil),
	}
}

func (h *harness) setupAdmin(t *testing.T) domain.Account {
	t.Helper()

	admin, err := h.bootstrap.Bootstrap(context.Background(), "", domain.AdminSetup{
		Name:     "Agency Admin",
		Email:    "admin@agency.test",
		Username: "admin",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return admin
}

func (h *harness) inviteClient(t *testing.T, rate float64) ClientInvitation {
	t.Helper()

	inv, err := h.clients.Invite(context.Background(), domain.ClientDraft{
		CompanyName:   "Acme",
		Email:         "finance@acme.test",
		RatePerMinute: rate,
		RatePerWord:   0.25,
	})
	require.NoError(t, err)
	return inv
}

func (h *harness) inviteTranslator(t *testing.T, name string) TranslatorInvitation {
	t.Helper()

	inv, err := h.translators.Invite(context.Background(), domain.TranslatorDraft{
		Name:  name,
		Email: name + "@translators.test",
	})
	require.NoError(t, err)
	return inv
}

func registration(name, username string) domain.Registration {
	return domain.Registration{
		Name:          name,
		Username:      username,
		Phone:         "555-0100",
		Password:      "s3cret-pass",
		AcceptedTerms: true,
	}
}

var managerActor = domain.Actor{AccountID: "admin", Role: domain.RoleManager}
