package console_test

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cirrustranslate/console/pkg/consolesdk"
)

/*
 * Container setup and shared flows for the console end-to-end tests.
 */

const (
	testImageName = "cirrus-console-test:latest"

	bootstrapToken = "test-bootstrap-token-12345"
	adminUsername  = "admin"
	adminPassword  = "Admin123!"
	memberPassword = "s3cret-pass"
)

// TestMain builds the Docker image once before all tests and removes it
// afterwards.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building console Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up console Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	cmd := exec.CommandContext(context.Background(), "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/console/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

func cleanupDockerImage() {
	cmd := exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // the image may already be gone
}

// setupConsoleContainer starts the console with relaxed rate limits and
// returns its base URL. Terminating the container is registered as cleanup.
func setupConsoleContainer(t *testing.T) string {
	t.Helper()
	return startContainer(t, map[string]string{
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	})
}

// setupConsoleContainerWithDefaultRateLimits runs the production limits.
// Only the rate limit tests should need it.
func setupConsoleContainerWithDefaultRateLimits(t *testing.T) string {
	t.Helper()
	return startContainer(t, nil)
}

func startContainer(t *testing.T, extra map[string]string) string {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"BOOTSTRAP_TOKEN": bootstrapToken,
		"PUBLIC_URL":      "https://console.example.test/",
		"ISSUER":          "console-e2e",
		"ENV":             "test",
		"LOG_LEVEL":       "info",
		"LOG_FORMAT":      "json",
	}
	for k, v := range extra {
		env[k] = v
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        testImageName,
			ExposedPorts: []string{"8080/tcp"},
			Env:          env,
			WaitingFor: wait.ForHTTP("/livez").
				WithPort("8080/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
}

// bootstrapConsole creates the manager account and signs in as it.
func bootstrapConsole(t *testing.T, client *consolesdk.SDKClient) *consolesdk.Session {
	t.Helper()
	ctx := t.Context()

	_, err := client.Bootstrap(ctx, bootstrapToken, consolesdk.BootstrapRequest{
		Name:     "Agency Admin",
		Email:    "admin@agency.test",
		Username: adminUsername,
		Password: adminPassword,
	})
	require.NoError(t, err)

	session, err := client.Login(ctx, adminUsername, adminPassword)
	require.NoError(t, err)
	return session
}

// onboardClient invites a client company and redeems the invite as its
// contact, returning the client record.
func onboardClient(t *testing.T, client *consolesdk.SDKClient, manager *consolesdk.Session, username string) consolesdk.ClientResponse {
	t.Helper()
	ctx := t.Context()

	inv, err := manager.InviteClient(ctx, consolesdk.ClientRequest{
		CompanyName:   "Acme " + username,
		Email:         username + "@acme.test",
		RatePerMinute: 5,
		RatePerWord:   0.25,
	})
	require.NoError(t, err)

	_, err = client.RedeemInvite(ctx, inv.Invite.Token, consolesdk.RegistrationRequest{
		Name: "Contact " + username, Username: username, Password: memberPassword, AcceptedTerms: true,
	})
	require.NoError(t, err)

	c, err := manager.GetClient(ctx, inv.Client.ID)
	require.NoError(t, err)
	return *c
}

// onboardTranslator invites a translator on default rates and redeems the
// invite.
func onboardTranslator(t *testing.T, client *consolesdk.SDKClient, manager *consolesdk.Session, username string) consolesdk.TranslatorResponse {
	t.Helper()
	ctx := t.Context()

	inv, err := manager.InviteTranslator(ctx, consolesdk.TranslatorRequest{
		Name: username, Email: username + "@translators.test",
	})
	require.NoError(t, err)

	_, err = client.RedeemInvite(ctx, inv.Invite.Token, consolesdk.RegistrationRequest{
		Name: username, Username: username, Password: memberPassword, AcceptedTerms: true,
	})
	require.NoError(t, err)

	tr, err := manager.GetTranslator(ctx, inv.Translator.ID)
	require.NoError(t, err)
	return *tr
}

// requireStatus asserts err is an API error with the given HTTP status.
func requireStatus(t *testing.T, err error, status int) *consolesdk.APIError {
	t.Helper()
	var apiErr *consolesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode, "unexpected error: %v", err)
	return apiErr
}

func requireRateLimited(t *testing.T, err error) {
	t.Helper()
	requireStatus(t, err, http.StatusTooManyRequests)
}
