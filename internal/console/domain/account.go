package domain

import "time"

type Account struct {
	ID           string
	Name         string
	Username     string
	Email        string
	Phone        string
	PasswordHash string // argon2 encoded
	Role         Role
	Status       RecordStatus
	RecordID     string // Client or translator record this account acts for; empty for managers
	CreatedAt    time.Time
}

// Actor is the authenticated caller of a service operation.
type Actor struct {
	AccountID string
	Role      Role
	RecordID  string
}
