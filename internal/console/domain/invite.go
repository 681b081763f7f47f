package domain

import "time"

type Invite struct {
	Token     string // Raw token; only populated for the issuer and on resolve
	TokenHash string
	Email     string
	Role      Role
	TargetID  string // Client or translator record activated on redemption
	CreatedAt time.Time
	ExpiresAt *time.Time // nil means the invite never expires
}

// Expired reports whether the invite has passed its expiry at now.
func (i Invite) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && !now.Before(*i.ExpiresAt)
}

// Registration is what an invited contact submits to redeem a token.
type Registration struct {
	Name          string `json:"name" validate:"required,max=200"`
	Username      string `json:"username" validate:"required,min=3,max=64"`
	Phone         string `json:"phone" validate:"omitempty,max=40"`
	Password      string `json:"password" validate:"required,min=8,max=256"`
	AcceptedTerms bool   `json:"accepted_terms"`
}
