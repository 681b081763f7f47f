package domain

import "time"

// Default billing profile applied to newly invited translators.
const (
	DefaultTranslatorRatePerWord   = 0.10
	DefaultTranslatorRatePerMinute = 8.00
)

type Translator struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	IsDeaf        bool
	RatePerWord   float64
	RatePerMinute float64
	Status        RecordStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TranslatorDraft is the manager's input when inviting a new translator.
// Nil rates fall back to the defaults above.
type TranslatorDraft struct {
	Name          string   `json:"name" validate:"required,max=200"`
	Email         string   `json:"email" validate:"required,email"`
	IsDeaf        bool     `json:"is_deaf"`
	RatePerWord   *float64 `json:"rate_per_word,omitempty" validate:"omitempty,gte=0"`
	RatePerMinute *float64 `json:"rate_per_minute,omitempty" validate:"omitempty,gte=0"`
}

// Rates resolves the draft's billing profile.
func (d TranslatorDraft) Rates() (perWord, perMinute float64) {
	perWord, perMinute = DefaultTranslatorRatePerWord, DefaultTranslatorRatePerMinute
	if d.RatePerWord != nil {
		perWord = *d.RatePerWord
	}
	if d.RatePerMinute != nil {
		perMinute = *d.RatePerMinute
	}
	return perWord, perMinute
}
