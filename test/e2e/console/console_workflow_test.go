package console_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cirrustranslate/console/internal/console/assist"
	"github.com/cirrustranslate/console/pkg/consolesdk"
)

func TestProjectLifecycle(t *testing.T) {
	client := consolesdk.NewSDKClient(setupConsoleContainer(t))
	manager := bootstrapConsole(t, client)
	acme := onboardClient(t, client, manager, "acme")
	dana := onboardTranslator(t, client, manager, "dana")
	onboardTranslator(t, client, manager, "lee")
	ctx := t.Context()

	project, err := manager.CreateProject(ctx, consolesdk.ProjectRequest{
		Name:       "Product manual",
		Type:       "document",
		ClientID:   acme.ID,
		WordCount:  200,
		SourceLang: "en",
		TargetLang: "fr",
	})
	require.NoError(t, err)
	require.Equal(t, "UNASSIGNED", project.Status)
	require.Equal(t, 50.0, project.ClientQuote)

	// Rate changes do not reprice existing work.
	_, err = manager.UpdateClientRates(ctx, acme.ID, consolesdk.RatesRequest{RatePerMinute: 5, RatePerWord: 1})
	require.NoError(t, err)
	project, err = manager.AssignTranslators(ctx, project.ID, []string{dana.ID, dana.ID})
	require.NoError(t, err)
	require.Equal(t, 50.0, project.ClientQuote)
	require.Equal(t, []string{dana.ID}, project.TranslatorIDs)

	dashboard, err := manager.Dashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, 50.0, dashboard.Revenue)
	require.Equal(t, 1, dashboard.Active)

	translator, err := client.Login(ctx, "dana", memberPassword)
	require.NoError(t, err)
	outsider, err := client.Login(ctx, "lee", memberPassword)
	require.NoError(t, err)
	owner, err := client.Login(ctx, "acme", memberPassword)
	require.NoError(t, err)

	// Visibility follows ownership and assignment.
	mine, err := translator.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	none, err := outsider.ListProjects(ctx)
	require.NoError(t, err)
	require.Empty(t, none)
	_, err = outsider.SetStatus(ctx, project.ID, "STARTED")
	requireStatus(t, err, http.StatusNotFound)

	// Any selectable step may be chosen in any order.
	_, err = translator.Finalize(ctx, project.ID)
	requireStatus(t, err, http.StatusConflict)
	for _, step := range []string{"QA", "STARTED", "UPLOADED"} {
		project, err = translator.SetStatus(ctx, project.ID, step)
		require.NoError(t, err)
		require.Equal(t, step, project.Status)
	}
	_, err = translator.SetStatus(ctx, project.ID, "UNASSIGNED")
	requireStatus(t, err, http.StatusBadRequest)

	_, err = owner.SetStatus(ctx, project.ID, "NEW")
	requireStatus(t, err, http.StatusForbidden)

	project, err = translator.Finalize(ctx, project.ID)
	require.NoError(t, err)
	require.NotNil(t, project.FinalizedAt)

	dashboard, err = manager.Dashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, dashboard.Active)

	seen, err := owner.GetProject(ctx, project.ID)
	require.NoError(t, err)
	require.Equal(t, "UPLOADED", seen.Status)
}

func TestAssistWithoutProviderReturnsFallback(t *testing.T) {
	client := consolesdk.NewSDKClient(setupConsoleContainer(t))
	manager := bootstrapConsole(t, client)
	ctx := t.Context()

	draft, err := manager.Draft(ctx, consolesdk.DraftRequest{Text: "Hello", SourceLang: "en", TargetLang: "es"})
	require.NoError(t, err)
	require.Equal(t, assist.DraftErrorMessage, draft)

	review, err := manager.Review(ctx, consolesdk.ReviewRequest{Source: "Hello", Target: "Hola"})
	require.NoError(t, err)
	require.Equal(t, assist.ReviewErrorMessage, review)
}
