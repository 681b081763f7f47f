package service

import (
	"context"

	"github.com/cirrustranslate/console/internal/console/domain"
	"github.com/cirrustranslate/console/internal/console/store"
)

type DashboardService struct {
	Store store.Store
}

// Totals reduces every project into revenue, payouts and the count of
// projects not yet UPLOADED.
func (s *DashboardService) Totals(ctx context.Context) (domain.Totals, error) {
	projects, err := s.Store.Projects().ListProjects(ctx)
	if err != nil {
		return domain.Totals{}, err
	}

	var t domain.Totals
	for _, p := range projects {
		t.Revenue += p.ClientQuote
		t.Payouts += p.Payouts()
		if p.Status != domain.JobUploaded {
			t.Active++
		}
	}
	return t, nil
}
