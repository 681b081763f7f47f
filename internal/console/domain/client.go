package domain

import "time"

type Client struct {
	ID            string
	CompanyName   string
	ContactName   string
	Email         string
	Phone         string
	RatePerWord   float64
	RatePerMinute float64
	Status        RecordStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ClientDraft is the manager's input when inviting a new client.
type ClientDraft struct {
	CompanyName   string  `json:"company_name" validate:"required,max=200"`
	Email         string  `json:"email" validate:"required,email"`
	RatePerMinute float64 `json:"rate_per_minute" validate:"gte=0"`
	RatePerWord   float64 `json:"rate_per_word" validate:"gte=0"`
}

// Rates is a billing profile update for a client or translator.
type Rates struct {
	RatePerMinute float64 `json:"rate_per_minute" validate:"gte=0"`
	RatePerWord   float64 `json:"rate_per_word" validate:"gte=0"`
}
