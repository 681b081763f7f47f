package console_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cirrustranslate/console/pkg/consolesdk"
)

func TestRejectsForgedAndMissingTokens(t *testing.T) {
	baseURL := setupConsoleContainer(t)
	client := consolesdk.NewSDKClient(baseURL)
	bootstrapConsole(t, client)
	ctx := t.Context()

	forged := client.NewSessionFromToken("eyJhbGciOiJFZERTQSJ9.e30.c2lnbmF0dXJl", time.Now().Add(time.Hour))
	_, err := forged.ListProjects(ctx)
	requireStatus(t, err, http.StatusUnauthorized)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/v1/me", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Contains(t, resp.Header.Get("WWW-Authenticate"), "invalid_token")
}

func TestRoleBoundaries(t *testing.T) {
	client := consolesdk.NewSDKClient(setupConsoleContainer(t))
	manager := bootstrapConsole(t, client)
	onboardClient(t, client, manager, "acme")
	onboardTranslator(t, client, manager, "dana")
	ctx := t.Context()

	owner, err := client.Login(ctx, "acme", memberPassword)
	require.NoError(t, err)
	translator, err := client.Login(ctx, "dana", memberPassword)
	require.NoError(t, err)

	for name, session := range map[string]*consolesdk.Session{"client": owner, "translator": translator} {
		t.Run(name, func(t *testing.T) {
			_, err := session.ListClients(ctx)
			requireStatus(t, err, http.StatusForbidden)

			_, err = session.InviteTranslator(ctx, consolesdk.TranslatorRequest{Name: "X", Email: "x@example.test"})
			requireStatus(t, err, http.StatusForbidden)

			_, err = session.ExportSnapshot(ctx)
			requireStatus(t, err, http.StatusForbidden)
		})
	}

	_, err = owner.Draft(ctx, consolesdk.DraftRequest{Text: "Hi", SourceLang: "en", TargetLang: "fr"})
	requireStatus(t, err, http.StatusForbidden)
}

func TestInviteTokensAreSingleUse(t *testing.T) {
	client := consolesdk.NewSDKClient(setupConsoleContainer(t))
	manager := bootstrapConsole(t, client)
	ctx := t.Context()

	inv, err := manager.InviteClient(ctx, consolesdk.ClientRequest{CompanyName: "Acme", Email: "ops@acme.test", RatePerWord: 0.2})
	require.NoError(t, err)

	req := consolesdk.RegistrationRequest{Name: "Ops", Username: "ops", Password: memberPassword}
	_, err = client.RedeemInvite(ctx, inv.Invite.Token, req)
	requireStatus(t, err, http.StatusBadRequest)

	// Declining the terms leaves the invite usable.
	_, err = client.ResolveInvite(ctx, inv.Invite.Token)
	require.NoError(t, err)

	req.AcceptedTerms = true
	_, err = client.RedeemInvite(ctx, inv.Invite.Token, req)
	require.NoError(t, err)

	_, err = client.ResolveInvite(ctx, inv.Invite.Token)
	requireStatus(t, err, http.StatusNotFound)
	_, err = client.RedeemInvite(ctx, inv.Invite.Token, req)
	requireStatus(t, err, http.StatusNotFound)
}
