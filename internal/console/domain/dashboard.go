package domain

// Totals are the manager dashboard aggregates.
type Totals struct {
	Revenue float64
	Payouts float64
	Active  int
}

// Snapshot mirrors the six independently persisted sections of console
// state.
type Snapshot struct {
	Admin       *Account
	Clients     []Client
	Translators []Translator
	Projects    []Project
	Accounts    []Account
	Invites     []Invite
}
