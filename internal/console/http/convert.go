package http

import (
	"github.com/cirrustranslate/console/internal/console/domain"
	"github.com/cirrustranslate/console/internal/console/service"
	"github.com/cirrustranslate/console/pkg/consolesdk"
)

func toAccount(a domain.Account) consolesdk.AccountResponse {
	return consolesdk.AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Username:  a.Username,
		Email:     a.Email,
		Phone:     a.Phone,
		Role:      string(a.Role),
		Status:    string(a.Status),
		RecordID:  a.RecordID,
		CreatedAt: a.CreatedAt,
	}
}

func toInvite(inv domain.Invite) consolesdk.InviteResponse {
	return consolesdk.InviteResponse{
		Token:     inv.Token,
		TokenHash: inv.TokenHash,
		Email:     inv.Email,
		Role:      string(inv.Role),
		TargetID:  inv.TargetID,
		CreatedAt: inv.CreatedAt,
		ExpiresAt: inv.ExpiresAt,
	}
}

func toClient(c domain.Client) consolesdk.ClientResponse {
	return consolesdk.ClientResponse{
		ID:            c.ID,
		CompanyName:   c.CompanyName,
		ContactName:   c.ContactName,
		Email:         c.Email,
		Phone:         c.Phone,
		RatePerMinute: c.RatePerMinute,
		RatePerWord:   c.RatePerWord,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toClientInvitation(inv service.ClientInvitation) consolesdk.ClientInvitationResponse {
	return consolesdk.ClientInvitationResponse{
		Client:    toClient(inv.Client),
		Invite:    toInvite(inv.Invite),
		InviteURL: inv.URL,
	}
}

func toTranslator(t domain.Translator) consolesdk.TranslatorResponse {
	return consolesdk.TranslatorResponse{
		ID:            t.ID,
		Name:          t.Name,
		Email:         t.Email,
		Phone:         t.Phone,
		IsDeaf:        t.IsDeaf,
		RatePerMinute: t.RatePerMinute,
		RatePerWord:   t.RatePerWord,
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func toTranslatorInvitation(inv service.TranslatorInvitation) consolesdk.TranslatorInvitationResponse {
	return consolesdk.TranslatorInvitationResponse{
		Translator: toTranslator(inv.Translator),
		Invite:     toInvite(inv.Invite),
		InviteURL:  inv.URL,
	}
}

func toProject(p domain.Project) consolesdk.ProjectResponse {
	ids := p.TranslatorIDs
	if ids == nil {
		ids = []string{}
	}
	quotes := p.TranslatorQuotes
	if quotes == nil {
		quotes = map[string]float64{}
	}
	return consolesdk.ProjectResponse{
		ID:               p.ID,
		Name:             p.Name,
		Title:            p.Title,
		Type:             string(p.Type),
		Status:           string(p.Status),
		ClientID:         p.ClientID,
		WordCount:        p.WordCount,
		MinuteCount:      p.MinuteCount,
		DriveLink:        p.DriveLink,
		AppliedRate:      p.AppliedRate,
		SourceLang:       p.SourceLang,
		TargetLang:       p.TargetLang,
		TranslatorIDs:    ids,
		ClientQuote:      p.ClientQuote,
		TranslatorQuotes: quotes,
		Deadline:         p.Deadline,
		Description:      p.Description,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
		FinalizedAt:      p.FinalizedAt,
	}
}

func toProjects(ps []domain.Project) []consolesdk.ProjectResponse {
	out := make([]consolesdk.ProjectResponse, len(ps))
	for i, p := range ps {
		out[i] = toProject(p)
	}
	return out
}

func projectDraft(req consolesdk.ProjectRequest) domain.ProjectDraft {
	return domain.ProjectDraft{
		Name:        req.Name,
		Title:       req.Title,
		Type:        domain.ProjectType(req.Type),
		ClientID:    req.ClientID,
		WordCount:   req.WordCount,
		MinuteCount: req.MinuteCount,
		DriveLink:   req.DriveLink,
		SourceLang:  req.SourceLang,
		TargetLang:  req.TargetLang,
		Deadline:    req.Deadline,
		Description: req.Description,
	}
}

// ============================================================================
// Snapshot
// ============================================================================

func toSnapshotAccount(a domain.Account) consolesdk.SnapshotAccount {
	return consolesdk.SnapshotAccount{AccountResponse: toAccount(a), PasswordHash: a.PasswordHash}
}

func fromSnapshotAccount(a consolesdk.SnapshotAccount) domain.Account {
	return domain.Account{
		ID:           a.ID,
		Name:         a.Name,
		Username:     a.Username,
		Email:        a.Email,
		Phone:        a.Phone,
		PasswordHash: a.PasswordHash,
		Role:         domain.Role(a.Role),
		Status:       domain.RecordStatus(a.Status),
		RecordID:     a.RecordID,
		CreatedAt:    a.CreatedAt,
	}
}

func toSnapshot(s domain.Snapshot) consolesdk.Snapshot {
	out := consolesdk.Snapshot{
		Clients:     make([]consolesdk.ClientResponse, len(s.Clients)),
		Translators: make([]consolesdk.TranslatorResponse, len(s.Translators)),
		Projects:    toProjects(s.Projects),
		Accounts:    make([]consolesdk.SnapshotAccount, len(s.Accounts)),
		Invites:     make([]consolesdk.InviteResponse, len(s.Invites)),
	}
	if s.Admin != nil {
		admin := toSnapshotAccount(*s.Admin)
		out.Admin = &admin
	}
	for i, c := range s.Clients {
		out.Clients[i] = toClient(c)
	}
	for i, t := range s.Translators {
		out.Translators[i] = toTranslator(t)
	}
	for i, a := range s.Accounts {
		out.Accounts[i] = toSnapshotAccount(a)
	}
	for i, inv := range s.Invites {
		out.Invites[i] = toInvite(inv)
	}
	return out
}

func fromSnapshot(s consolesdk.Snapshot) domain.Snapshot {
	out := domain.Snapshot{}
	if s.Admin != nil {
		admin := fromSnapshotAccount(*s.Admin)
		out.Admin = &admin
	}
	for _, c := range s.Clients {
		out.Clients = append(out.Clients, domain.Client{
			ID:            c.ID,
			CompanyName:   c.CompanyName,
			ContactName:   c.ContactName,
			Email:         c.Email,
			Phone:         c.Phone,
			RatePerWord:   c.RatePerWord,
			RatePerMinute: c.RatePerMinute,
			Status:        domain.RecordStatus(c.Status),
			CreatedAt:     c.CreatedAt,
			UpdatedAt:     c.UpdatedAt,
		})
	}
	for _, t := range s.Translators {
		out.Translators = append(out.Translators, domain.Translator{
			ID:            t.ID,
			Name:          t.Name,
			Email:         t.Email,
			Phone:         t.Phone,
			IsDeaf:        t.IsDeaf,
			RatePerWord:   t.RatePerWord,
			RatePerMinute: t.RatePerMinute,
			Status:        domain.RecordStatus(t.Status),
			CreatedAt:     t.CreatedAt,
			UpdatedAt:     t.UpdatedAt,
		})
	}
	for _, p := range s.Projects {
		out.Projects = append(out.Projects, domain.Project{
			ID:               p.ID,
			Name:             p.Name,
			Title:            p.Title,
			Type:             domain.ProjectType(p.Type),
			Status:           domain.JobStatus(p.Status),
			ClientID:         p.ClientID,
			WordCount:        p.WordCount,
			MinuteCount:      p.MinuteCount,
			DriveLink:        p.DriveLink,
			AppliedRate:      p.AppliedRate,
			SourceLang:       p.SourceLang,
			TargetLang:       p.TargetLang,
			TranslatorIDs:    p.TranslatorIDs,
			ClientQuote:      p.ClientQuote,
			TranslatorQuotes: p.TranslatorQuotes,
			Deadline:         p.Deadline,
			Description:      p.Description,
			CreatedAt:        p.CreatedAt,
			UpdatedAt:        p.UpdatedAt,
			FinalizedAt:      p.FinalizedAt,
		})
	}
	for _, a := range s.Accounts {
		out.Accounts = append(out.Accounts, fromSnapshotAccount(a))
	}
	for _, inv := range s.Invites {
		out.Invites = append(out.Invites, domain.Invite{
			TokenHash: inv.TokenHash,
			Email:     inv.Email,
			Role:      domain.Role(inv.Role),
			TargetID:  inv.TargetID,
			CreatedAt: inv.CreatedAt,
			ExpiresAt: inv.ExpiresAt,
		})
	}
	return out
}
