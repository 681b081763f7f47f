/*
Package consolesdk is a Go client for the agency console HTTP API.

Public operations live on SDKClient. Signing in returns a Session that
carries the bearer token for everything else:

	client := consolesdk.NewSDKClient("https://console.example.com")

	// One-time platform setup
	admin, err := client.Bootstrap(ctx, setupToken, consolesdk.BootstrapRequest{...})

	// Invitees look up and redeem their invite without a session
	invite, err := client.ResolveInvite(ctx, token)
	account, err := client.RedeemInvite(ctx, token, consolesdk.RegistrationRequest{...})

	session, err := client.Login(ctx, "finance@acme.test", password)
	projects, err := session.ListProjects(ctx)

Errors returned by the API are *APIError values carrying the HTTP status and
the error code from the response body.
*/
package consolesdk
