package usecase

import (
	"context"
	"time"

	"github.com/sestevao/marketing-analytics/internal/core/domain"
	"github.com/sestevao/marketing-analytics/internal/core/port"
	"github.com/sestevao/marketing-analytics/internal/mockdata"
)

// platformLabels maps a supported platform to the human-readable label put
// on its analytics record. The per-platform fetch logic is otherwise
// identical, so a single adapter keyed by this map replaces one code path
// per network.
var platformLabels = map[domain.Platform]string{
	domain.PlatformGoogle:   "Google Ads",
	domain.PlatformFacebook: "Facebook Ads",
	domain.PlatformLinkedIn: "LinkedIn Ads",
}

const (
	// reportDays is the length of the generated daily series. The
	// caller-supplied date range is ignored; mock data always covers the
	// trailing 30 days.
	reportDays = 30

	minLeadsPerAccount = 5
	maxLeadsPerAccount = 15
)

// AnalyticsUseCase produces mock analytics records and aggregates leads
// across accounts. It depends only on the DataGenerator seam, so tests can
// swap in a seeded or canned generator.
type AnalyticsUseCase struct {
	gen port.DataGenerator
}

// NewAnalyticsUseCase creates an analytics usecase backed by gen.
func NewAnalyticsUseCase(gen port.DataGenerator) *AnalyticsUseCase {
	return &AnalyticsUseCase{gen: gen}
}

// FetchAnalytics returns the analytics record for one account. Unsupported
// platform values degrade to the zero record rather than failing; callers
// rely on that. The start and end parameters are accepted but unused: the
// generated series always spans the trailing 30 days.
func (u *AnalyticsUseCase) FetchAnalytics(_ context.Context, acc domain.AdAccount, _, _ time.Time) domain.Report {
	label, ok := platformLabels[acc.Platform]
	if !ok {
		return domain.Report{
			DailyData: []domain.DailyMetric{},
			LeadsList: []domain.Lead{},
		}
	}
	return u.fetchPlatform(label)
}

// fetchPlatform builds the record for a supported platform: a 30-day
// series, a random batch of leads and the column sums of the series.
func (u *AnalyticsUseCase) fetchPlatform(label string) domain.Report {
	daily := u.gen.DailyMetrics(reportDays)
	leads := u.gen.Leads(u.gen.IntBetween(minLeadsPerAccount, maxLeadsPerAccount))

	rep := domain.Report{
		Platform:  label,
		DailyData: daily,
		LeadsList: leads,
	}
	for _, d := range daily {
		rep.Impressions += d.Impressions
		rep.Clicks += d.Clicks
		rep.Conversions += d.Conversions
		rep.Leads += d.Leads
		rep.Spend += d.Spend
	}
	return rep
}

// RecentLeads combines the lead lists of all accounts, tags every lead with
// its source account, sorts the combined list by CreatedAt descending and
// returns the requested page. Leads are appended by value, so the tagging
// never touches the slices returned by the generator. Account order does
// not matter: the full collection is re-sorted before pagination.
func (u *AnalyticsUseCase) RecentLeads(ctx context.Context, accounts []domain.AdAccount, page, perPage int) domain.PagedLeads {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = port.DashboardPerPage
	}

	var all []domain.Lead
	for _, acc := range accounts {
		rep := u.FetchAnalytics(ctx, acc, time.Time{}, time.Time{})
		for _, lead := range rep.LeadsList {
			lead.AccountName = acc.Name
			lead.AccountPlatform = acc.Platform
			lead.AccountID = acc.ID
			all = append(all, lead)
		}
	}
	mockdata.SortLeads(all)

	offset := (page - 1) * perPage
	items := []domain.Lead{}
	if offset < len(all) {
		end := offset + perPage
		if end > len(all) {
			end = len(all)
		}
		items = all[offset:end]
	}

	return domain.PagedLeads{
		Items:   items,
		Total:   len(all),
		Page:    page,
		PerPage: perPage,
	}
}
