package domain

import (
	"strings"
	"time"
)

type ProjectType string

const (
	ProjectDocument ProjectType = "document"
	ProjectVideo    ProjectType = "video"
)

// Language defaults applied to drafts that leave them blank.
const (
	DefaultSourceLang = "English"
	DefaultTargetLang = "ASL"
)

type Project struct {
	ID               string
	Name             string
	Title            string
	Type             ProjectType
	Status           JobStatus
	ClientID         string
	WordCount        int
	MinuteCount      int
	DriveLink        string
	AppliedRate      float64 // Client rate in effect when the quote was computed
	SourceLang       string
	TargetLang       string
	TranslatorIDs    []string
	ClientQuote      float64
	TranslatorQuotes map[string]float64 // translator id to payout; never populated
	Deadline         string
	Description      string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	FinalizedAt      *time.Time
}

// Quantity is the billable unit count for the project's type.
func (p Project) Quantity() int {
	if p.Type == ProjectDocument {
		return p.WordCount
	}
	return p.MinuteCount
}

// AssignedTo reports whether translatorID is on the project.
func (p Project) AssignedTo(translatorID string) bool {
	if translatorID == "" {
		return false
	}
	for _, id := range p.TranslatorIDs {
		if id == translatorID {
			return true
		}
	}
	return false
}

// Payouts sums the per-translator quotes.
func (p Project) Payouts() float64 {
	var total float64
	for _, v := range p.TranslatorQuotes {
		total += v
	}
	return total
}

// ProjectDraft is scratch form state for creating or editing a project.
// It is validated before being converted into a Project.
type ProjectDraft struct {
	Name        string      `json:"name" validate:"required,max=200"`
	Title       string      `json:"title" validate:"max=200"`
	Type        ProjectType `json:"type" validate:"omitempty,oneof=document video"`
	ClientID    string      `json:"client_id" validate:"required"`
	WordCount   int         `json:"word_count" validate:"gte=0"`
	MinuteCount int         `json:"minute_count" validate:"gte=0"`
	DriveLink   string      `json:"drive_link" validate:"omitempty,url"`
	SourceLang  string      `json:"source_lang" validate:"max=64"`
	TargetLang  string      `json:"target_lang" validate:"max=64"`
	Deadline    string      `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Description string      `json:"description" validate:"max=4000"`
}

// Normalize fills the defaults the console applies to new drafts.
func (d ProjectDraft) Normalize() ProjectDraft {
	d.Name = strings.TrimSpace(d.Name)
	if d.Type == "" {
		d.Type = ProjectVideo
	}
	if strings.TrimSpace(d.SourceLang) == "" {
		d.SourceLang = DefaultSourceLang
	}
	if strings.TrimSpace(d.TargetLang) == "" {
		d.TargetLang = DefaultTargetLang
	}
	return d
}

// Quote computes the client charge and the rate it was computed with.
func (d ProjectDraft) Quote(c Client) (quote, rate float64) {
	if d.Type == ProjectDocument {
		return float64(d.WordCount) * c.RatePerWord, c.RatePerWord
	}
	return float64(d.MinuteCount) * c.RatePerMinute, c.RatePerMinute
}

// Apply copies the draft's editable fields onto p and freezes the quote
// against c's current rates.
func (d ProjectDraft) Apply(p *Project, c Client) {
	p.Name = d.Name
	p.Title = d.Title
	p.Type = d.Type
	p.ClientID = d.ClientID
	p.WordCount = d.WordCount
	p.MinuteCount = d.MinuteCount
	p.DriveLink = d.DriveLink
	p.SourceLang = d.SourceLang
	p.TargetLang = d.TargetLang
	p.Deadline = d.Deadline
	p.Description = d.Description
	p.ClientQuote, p.AppliedRate = d.Quote(c)
}
