package domain

// Role is the single, immutable role an Account holds.
type Role string

const (
	RoleManager    Role = "MANAGER"
	RoleTranslator Role = "TRANSLATOR"
	RoleClient     Role = "CLIENT"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleTranslator, RoleClient:
		return true
	}
	return false
}

// Invitable reports whether accounts of this role are onboarded through an
// invite. Managers are created by platform setup only.
func (r Role) Invitable() bool {
	return r == RoleTranslator || r == RoleClient
}

// RecordStatus is the lifecycle of accounts and client/translator records.
type RecordStatus string

const (
	StatusPending RecordStatus = "pending"
	StatusActive  RecordStatus = "active"
)
