package consolesdk

import "time"

// ============================================================================
// Error Types (used for JSON unmarshaling)
// ============================================================================

// ErrorResponse is the body of every non-validation error. Client code should
// use the APIError type from errors.go instead.
type ErrorResponse struct {
	// Error is the machine-readable code (e.g. "not_found", "forbidden")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is returned when a submitted form fails validation.
type ValidationErrorResponse struct {
	// Code is always "validation_error"
	Code string `json:"code"`

	Message string `json:"message"`

	// Details maps json field names to what is wrong with them
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Setup & Sessions
// ============================================================================

type BootstrapRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type BootstrapStatusResponse struct {
	Bootstrapped bool `json:"bootstrapped"`
}

type LoginRequest struct {
	// Login is a username or an email address
	Login    string `json:"login"`
	Password string `json:"password"`
}

type SessionResponse struct {
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	ExpiresAt time.Time       `json:"expires_at"`
	Account   AccountResponse `json:"account"`
}

// AccountResponse is a registered account. Password hashes never leave the
// server except inside a snapshot.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	RecordID  string    `json:"record_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MeResponse describes the caller as seen from their session token.
type MeResponse struct {
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
	RecordID  string `json:"record_id,omitempty"`
	Username  string `json:"username"`
	Name      string `json:"name"`
}

// ============================================================================
// Invites
// ============================================================================

type InviteResponse struct {
	// Token is only present for the issuer and when resolving by token
	Token     string     `json:"token,omitempty"`
	TokenHash string     `json:"token_hash"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	TargetID  string     `json:"target_id"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type RegistrationRequest struct {
	Name          string `json:"name"`
	Username      string `json:"username"`
	Phone         string `json:"phone,omitempty"`
	Password      string `json:"password"`
	AcceptedTerms bool   `json:"accepted_terms"`
}

// ============================================================================
// Roster
// ============================================================================

type ClientRequest struct {
	CompanyName   string  `json:"company_name"`
	Email         string  `json:"email"`
	RatePerMinute float64 `json:"rate_per_minute"`
	RatePerWord   float64 `json:"rate_per_word"`
}

type ClientResponse struct {
	ID            string    `json:"id"`
	CompanyName   string    `json:"company_name"`
	ContactName   string    `json:"contact_name,omitempty"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	RatePerMinute float64   `json:"rate_per_minute"`
	RatePerWord   float64   `json:"rate_per_word"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ClientInvitationResponse is a new pending client and the link to send them.
type ClientInvitationResponse struct {
	Client    ClientResponse `json:"client"`
	Invite    InviteResponse `json:"invite"`
	InviteURL string         `json:"invite_url"`
}

type TranslatorRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	IsDeaf bool   `json:"is_deaf"`

	// Nil rates fall back to the agency defaults
	RatePerWord   *float64 `json:"rate_per_word,omitempty"`
	RatePerMinute *float64 `json:"rate_per_minute,omitempty"`
}

type TranslatorResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	IsDeaf        bool      `json:"is_deaf"`
	RatePerMinute float64   `json:"rate_per_minute"`
	RatePerWord   float64   `json:"rate_per_word"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type TranslatorInvitationResponse struct {
	Translator TranslatorResponse `json:"translator"`
	Invite     InviteResponse     `json:"invite"`
	InviteURL  string             `json:"invite_url"`
}

type RatesRequest struct {
	RatePerMinute float64 `json:"rate_per_minute"`
	RatePerWord   float64 `json:"rate_per_word"`
}

// ============================================================================
// Projects & Workflow
// ============================================================================

type ProjectRequest struct {
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Type        string `json:"type,omitempty"`
	ClientID    string `json:"client_id"`
	WordCount   int    `json:"word_count,omitempty"`
	MinuteCount int    `json:"minute_count,omitempty"`
	DriveLink   string `json:"drive_link,omitempty"`
	SourceLang  string `json:"source_lang,omitempty"`
	TargetLang  string `json:"target_lang,omitempty"`
	Deadline    string `json:"deadline,omitempty"`
	Description string `json:"description,omitempty"`
}

type ProjectResponse struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Title            string             `json:"title,omitempty"`
	Type             string             `json:"type"`
	Status           string             `json:"status"`
	ClientID         string             `json:"client_id"`
	WordCount        int                `json:"word_count"`
	MinuteCount      int                `json:"minute_count"`
	DriveLink        string             `json:"drive_link,omitempty"`
	AppliedRate      float64            `json:"applied_rate"`
	SourceLang       string             `json:"source_lang"`
	TargetLang       string             `json:"target_lang"`
	TranslatorIDs    []string           `json:"translator_ids"`
	ClientQuote      float64            `json:"client_quote"`
	TranslatorQuotes map[string]float64 `json:"translator_quotes"`
	Deadline         string             `json:"deadline,omitempty"`
	Description      string             `json:"description,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
	FinalizedAt      *time.Time         `json:"finalized_at,omitempty"`
}

type AssignTranslatorsRequest struct {
	TranslatorIDs []string `json:"translator_ids"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type WorkflowStepsResponse struct {
	Steps []string `json:"steps"`
}

type DashboardResponse struct {
	Revenue float64 `json:"revenue"`
	Payouts float64 `json:"payouts"`
	Active  int     `json:"active"`
}

// ============================================================================
// Translation Assist
// ============================================================================

type DraftRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type ReviewRequest struct {
	Source     string `json:"source"`
	Target     string `json:"target"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// AssistResponse carries either the generated text or a human-readable
// fallback message.
type AssistResponse struct {
	Text string `json:"text"`
}

// ============================================================================
// Snapshot
// ============================================================================

// SnapshotAccount is an account as stored, password hash included.
type SnapshotAccount struct {
	AccountResponse
	PasswordHash string `json:"password_hash"`
}

// Snapshot is the whole console state as six independent sections.
type Snapshot struct {
	Admin       *SnapshotAccount     `json:"admin"`
	Clients     []ClientResponse     `json:"clients"`
	Translators []TranslatorResponse `json:"translators"`
	Projects    []ProjectResponse    `json:"projects"`
	Accounts    []SnapshotAccount    `json:"accounts"`
	Invites     []InviteResponse     `json:"invites"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status string `json:"status"`

	// Uptime is the service uptime as a duration string (e.g. "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	Version string `json:"version,omitempty"`

	// Checks holds per-dependency results; readyz only
	Checks map[string]string `json:"checks,omitempty"`
}
