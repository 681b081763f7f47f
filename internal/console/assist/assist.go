// Package assist produces translation drafts and reviews through a
// generative text provider. Failures never surface as errors: callers always
// get a string they can show to the translator.
package assist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cirrustranslate/console/pkg/slogx"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/time/rate"
)

// Messages returned in place of generated text.
const (
	DraftErrorMessage  = "Error getting draft. Please try again."
	DraftEmptyMessage  = "Failed to generate translation."
	ReviewErrorMessage = "Error during review."
	ReviewEmptyMessage = "Analysis failed."
)

var ErrNotConfigured = errors.New("translation assist is not configured")

// Provider generates text for a prompt.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	// Provider may be nil, in which case every call returns its error message.
	Provider Provider

	// Limiter throttles outbound calls; nil means unlimited.
	Limiter *rate.Limiter
}

// Draft asks the provider to translate text from sourceLang to targetLang.
func (s *Service) Draft(ctx context.Context, text, sourceLang, targetLang string) string {
	prompt := fmt.Sprintf(
		"Translate the following text from %s to %s. Provide a high-quality, natural-sounding translation. "+
			"Only return the translated text.\n\nText: %q",
		LanguageName(sourceLang), LanguageName(targetLang), text,
	)

	out, err := s.generate(ctx, prompt)
	switch {
	case errors.Is(err, ErrEmptyCompletion):
		return DraftEmptyMessage
	case err != nil:
		slogx.FromContext(ctx).Error("translation draft failed", slog.Any("error", err))
		return DraftErrorMessage
	}
	return out
}

// Review asks the provider to critique target as a translation of source.
func (s *Service) Review(ctx context.Context, source, target, sourceLang, targetLang string) string {
	prompt := fmt.Sprintf(
		"Analyze the translation accuracy from %s to %s.\n\nOriginal: %q\nTranslation: %q\n\n"+
			"Provide a critique and suggestions if any. If it's perfect, say \"Looks good!\"",
		LanguageName(sourceLang), LanguageName(targetLang), source, target,
	)

	out, err := s.generate(ctx, prompt)
	switch {
	case errors.Is(err, ErrEmptyCompletion):
		return ReviewEmptyMessage
	case err != nil:
		slogx.FromContext(ctx).Error("translation review failed", slog.Any("error", err))
		return ReviewErrorMessage
	}
	return out
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	if s.Provider == nil {
		return "", ErrNotConfigured
	}
	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("wait for rate limit: %w", err)
		}
	}

	out, err := s.Provider.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "", ErrEmptyCompletion
	}
	return out, nil
}

// LanguageName renders a two-letter language code such as "fr" or "pt-BR"
// as its English display name. Anything else, including free-form names
// like "ASL", is returned trimmed but otherwise unchanged.
func LanguageName(lang string) string {
	lang = strings.TrimSpace(lang)
	base, _, _ := strings.Cut(lang, "-")
	if len(base) != 2 {
		return lang
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return lang
}
