package assist

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type stubProvider struct {
	out     string
	err     error
	prompts []string
}

func (p *stubProvider) Generate(_ context.Context, prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	return p.out, p.err
}

func TestDraftFallbacks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name     string
		provider Provider
		want     string
	}{
		{"ok", &stubProvider{out: "Bonjour"}, "Bonjour"},
		{"provider error", &stubProvider{err: errors.New("boom")}, DraftErrorMessage},
		{"empty output", &stubProvider{out: "  "}, DraftEmptyMessage},
		{"not configured", nil, DraftErrorMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Service{Provider: tt.provider}
			require.Equal(t, tt.want, s.Draft(ctx, "Hello", "en", "fr"))
		})
	}
}

func TestReviewFallbacks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	s := &Service{Provider: &stubProvider{out: "Looks good!"}}
	require.Equal(t, "Looks good!", s.Review(ctx, "Hello", "Bonjour", "en", "fr"))

	s = &Service{Provider: &stubProvider{err: errors.New("boom")}}
	require.Equal(t, ReviewErrorMessage, s.Review(ctx, "Hello", "Bonjour", "en", "fr"))

	s = &Service{Provider: &stubProvider{err: ErrEmptyCompletion}}
	require.Equal(t, ReviewEmptyMessage, s.Review(ctx, "Hello", "Bonjour", "en", "fr"))
}

func TestPromptsUseLanguageNames(t *testing.T) {
	t.Parallel()

	p := &stubProvider{out: "ok"}
	s := &Service{Provider: p}

	s.Draft(context.Background(), "Welcome", "en", "ASL")
	require.Len(t, p.prompts, 1)
	require.Contains(t, p.prompts[0], "from English to ASL")
	require.Contains(t, p.prompts[0], `"Welcome"`)

	s.Review(context.Background(), "Hi", "Salut", "English", "fr")
	require.Contains(t, p.prompts[1], "from English to French")
	require.Contains(t, p.prompts[1], `Translation: "Salut"`)
}

func TestLanguageName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "French", LanguageName("fr"))
	require.Equal(t, "English", LanguageName(" English "))
	require.Equal(t, "ASL", LanguageName("ASL"))
	require.Equal(t, "", LanguageName(""))
}

func TestLimiterHonoursContext(t *testing.T) {
	t.Parallel()

	p := &stubProvider{out: "ok"}
	s := &Service{Provider: p, Limiter: rate.NewLimiter(rate.Limit(0.001), 1)}

	require.Equal(t, "ok", s.Draft(context.Background(), "a", "en", "fr"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Equal(t, DraftErrorMessage, s.Draft(ctx, "b", "en", "fr"))
	require.Len(t, p.prompts, 1)
}

func TestGeminiGenerate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if r.URL.Path != "/v1beta/models/test-model:generateContent" ||
			r.Header.Get("x-goog-api-key") != "k" ||
			len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 ||
			req.Contents[0].Parts[0].Text != "Translate hello" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":{"message":"unexpected request"}}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"Bon"},{"text":"jour "}]}}]}`)
	}))
	t.Cleanup(srv.Close)

	g := NewGemini(GeminiConfig{APIKey: "k", Model: "test-model", BaseURL: srv.URL + "/", HTTPClient: srv.Client()})
	out, err := g.Generate(context.Background(), "Translate hello")
	require.NoError(t, err)
	require.Equal(t, "Bonjour", out)
}

func TestGeminiErrors(t *testing.T) {
	t.Parallel()

	t.Run("api error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, `{"error":{"code":403,"message":"API key not valid"}}`)
		}))
		t.Cleanup(srv.Close)

		_, err := NewGemini(GeminiConfig{APIKey: "bad", BaseURL: srv.URL}).Generate(context.Background(), "x")
		require.Error(t, err)
		require.True(t, strings.Contains(err.Error(), "403"))
		require.True(t, strings.Contains(err.Error(), "API key not valid"))
	})

	t.Run("no candidates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"candidates":[]}`)
		}))
		t.Cleanup(srv.Close)

		_, err := NewGemini(GeminiConfig{APIKey: "k", BaseURL: srv.URL}).Generate(context.Background(), "x")
		require.ErrorIs(t, err, ErrEmptyCompletion)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := NewGemini(GeminiConfig{}).Generate(context.Background(), "x")
		require.Error(t, err)
	})
}
