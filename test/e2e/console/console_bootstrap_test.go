package console_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cirrustranslate/console/pkg/consolesdk"
)

func TestBootstrapRunsOnce(t *testing.T) {
	client := consolesdk.NewSDKClient(setupConsoleContainer(t))
	ctx := t.Context()

	status, err := client.BootstrapStatus(ctx)
	require.NoError(t, err)
	require.False(t, status.Bootstrapped)

	req := consolesdk.BootstrapRequest{
		Name: "Agency Admin", Email: "admin@agency.test", Username: adminUsername, Password: adminPassword,
	}

	_, err = client.Bootstrap(ctx, "wrong-token", req)
	requireStatus(t, err, http.StatusUnauthorized)

	admin, err := client.Bootstrap(ctx, bootstrapToken, req)
	require.NoError(t, err)
	require.Equal(t, "MANAGER", admin.Role)

	_, err = client.Bootstrap(ctx, bootstrapToken, req)
	requireStatus(t, err, http.StatusConflict)

	status, err = client.BootstrapStatus(ctx)
	require.NoError(t, err)
	require.True(t, status.Bootstrapped)
}

func TestSnapshotMovesAgencyBetweenInstances(t *testing.T) {
	source := consolesdk.NewSDKClient(setupConsoleContainer(t))
	manager := bootstrapConsole(t, source)
	acme := onboardClient(t, source, manager, "acme")
	ctx := t.Context()

	pending, err := manager.InviteTranslator(ctx, consolesdk.TranslatorRequest{Name: "Lee", Email: "lee@translators.test"})
	require.NoError(t, err)

	snap, err := manager.ExportSnapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Clients, 1)
	require.Len(t, snap.Invites, 1)

	dest := consolesdk.NewSDKClient(setupConsoleContainer(t))
	require.NoError(t, dest.ImportSnapshot(ctx, bootstrapToken, *snap))

	// Password hashes and invites carry over, so both logins and the
	// outstanding invite work on the new instance.
	restored, err := dest.Login(ctx, adminUsername, adminPassword)
	require.NoError(t, err)
	c, err := restored.GetClient(ctx, acme.ID)
	require.NoError(t, err)
	require.Equal(t, acme.CompanyName, c.CompanyName)

	_, err = dest.Login(ctx, "acme@acme.test", memberPassword)
	require.NoError(t, err)

	_, err = dest.RedeemInvite(ctx, pending.Invite.Token, consolesdk.RegistrationRequest{
		Name: "Lee Park", Username: "lee", Password: memberPassword, AcceptedTerms: true,
	})
	require.NoError(t, err)

	err = dest.ImportSnapshot(ctx, bootstrapToken, *snap)
	requireStatus(t, err, http.StatusConflict)
}
