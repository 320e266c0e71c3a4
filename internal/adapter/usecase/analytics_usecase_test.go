package usecase

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sestevao/marketing-analytics/internal/core/domain"
	"github.com/sestevao/marketing-analytics/internal/core/port"
	"github.com/sestevao/marketing-analytics/internal/mockdata"
)

var testNow = time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

func newSeededAnalytics(seed int64) *AnalyticsUseCase {
	src := mockdata.New(rand.New(rand.NewSource(seed)), func() time.Time { return testNow })
	return NewAnalyticsUseCase(src)
}

func TestFetchAnalyticsTotalsMatchDailyData(t *testing.T) {
	svc := newSeededAnalytics(1)

	cases := []struct {
		platform domain.Platform
		label    string
	}{
		{domain.PlatformGoogle, "Google Ads"},
		{domain.PlatformFacebook, "Facebook Ads"},
		{domain.PlatformLinkedIn, "LinkedIn Ads"},
	}
	for _, tc := range cases {
		rep := svc.FetchAnalytics(context.Background(), domain.AdAccount{Platform: tc.platform}, time.Time{}, time.Time{})

		require.Equal(t, tc.label, rep.Platform)
		require.Len(t, rep.DailyData, 31)
		require.GreaterOrEqual(t, len(rep.LeadsList), 5)
		require.LessOrEqual(t, len(rep.LeadsList), 15)

		var imp, clicks, conv, leads, spend int
		for _, d := range rep.DailyData {
			imp += d.Impressions
			clicks += d.Clicks
			conv += d.Conversions
			leads += d.Leads
			spend += d.Spend
		}
		require.Equal(t, imp, rep.Impressions)
		require.Equal(t, clicks, rep.Clicks)
		require.Equal(t, conv, rep.Conversions)
		require.Equal(t, leads, rep.Leads)
		require.Equal(t, spend, rep.Spend)
	}
}

func TestFetchAnalyticsUnknownPlatform(t *testing.T) {
	svc := newSeededAnalytics(2)

	rep := svc.FetchAnalytics(context.Background(), domain.AdAccount{Platform: "bogus"}, time.Time{}, time.Time{})

	require.Empty(t, rep.Platform)
	require.Zero(t, rep.Impressions)
	require.Zero(t, rep.Clicks)
	require.Zero(t, rep.Conversions)
	require.Zero(t, rep.Leads)
	require.Zero(t, rep.Spend)
	require.NotNil(t, rep.DailyData)
	require.Empty(t, rep.DailyData)
	require.NotNil(t, rep.LeadsList)
	require.Empty(t, rep.LeadsList)
}

// scriptedGenerator returns a fixed batch of leads per Leads call so tests
// control how many leads each account contributes.
type scriptedGenerator struct {
	batches [][]domain.Lead
	calls   int
}

func (g *scriptedGenerator) DailyMetrics(days int) []domain.DailyMetric {
	return make([]domain.DailyMetric, days+1)
}

func (g *scriptedGenerator) Leads(int) []domain.Lead {
	b := g.batches[g.calls%len(g.batches)]
	g.calls++
	return b
}

func (g *scriptedGenerator) IntBetween(lo, _ int) int { return lo }

func scriptedLeads(prefix string, n int, newest time.Time) []domain.Lead {
	leads := make([]domain.Lead, 0, n)
	for i := 0; i < n; i++ {
		leads = append(leads, domain.Lead{
			ID:        prefix + string(rune('0'+i)),
			CreatedAt: newest.Add(-time.Duration(i) * time.Hour),
		})
	}
	return leads
}

func TestRecentLeadsAggregatesAndTags(t *testing.T) {
	accounts := []domain.AdAccount{
		{ID: 1, Name: "Google Account 001", Platform: domain.PlatformGoogle},
		{ID: 2, Name: "Facebook Account 002", Platform: domain.PlatformFacebook},
	}
	gen := &scriptedGenerator{batches: [][]domain.Lead{
		scriptedLeads("a", 5, testNow),
		scriptedLeads("b", 3, testNow.Add(-30*time.Minute)),
	}}
	svc := NewAnalyticsUseCase(gen)

	page := svc.RecentLeads(context.Background(), accounts, 1, port.DashboardPerPage)

	require.Equal(t, 8, page.Total)
	require.Len(t, page.Items, 8)
	require.Equal(t, 1, page.Page)
	require.Equal(t, 15, page.PerPage)

	for i := 1; i < len(page.Items); i++ {
		require.False(t, page.Items[i].CreatedAt.After(page.Items[i-1].CreatedAt),
			"items not sorted descending at index %d", i)
	}

	byAccount := map[int64]int{}
	for _, l := range page.Items {
		byAccount[l.AccountID]++
		switch l.AccountID {
		case 1:
			require.Equal(t, "Google Account 001", l.AccountName)
			require.Equal(t, domain.PlatformGoogle, l.AccountPlatform)
		case 2:
			require.Equal(t, "Facebook Account 002", l.AccountName)
			require.Equal(t, domain.PlatformFacebook, l.AccountPlatform)
		default:
			t.Fatalf("lead %s tagged with unexpected account %d", l.ID, l.AccountID)
		}
	}
	require.Equal(t, 5, byAccount[1])
	require.Equal(t, 3, byAccount[2])
}

func TestRecentLeadsPagination(t *testing.T) {
	accounts := []domain.AdAccount{{ID: 1, Name: "A", Platform: domain.PlatformGoogle}}
	gen := &scriptedGenerator{batches: [][]domain.Lead{scriptedLeads("a", 8, testNow)}}
	svc := NewAnalyticsUseCase(gen)

	page := svc.RecentLeads(context.Background(), accounts, 2, 5)
	require.Equal(t, 8, page.Total)
	require.Len(t, page.Items, 3)
	require.Equal(t, 2, page.Page)

	// a page past the end is empty but keeps the correct total
	gen.calls = 0
	empty := svc.RecentLeads(context.Background(), accounts, 99, 15)
	require.Equal(t, 8, empty.Total)
	require.NotNil(t, empty.Items)
	require.Empty(t, empty.Items)
}

func TestRecentLeadsDoesNotMutateGeneratorOutput(t *testing.T) {
	batch := scriptedLeads("a", 3, testNow)
	gen := &scriptedGenerator{batches: [][]domain.Lead{batch}}
	svc := NewAnalyticsUseCase(gen)

	svc.RecentLeads(context.Background(), []domain.AdAccount{{ID: 9, Name: "X", Platform: domain.PlatformGoogle}}, 1, 15)

	for _, l := range batch {
		require.Empty(t, l.AccountName)
		require.Zero(t, l.AccountID)
	}
}

func TestRecentLeadsNoAccounts(t *testing.T) {
	svc := newSeededAnalytics(3)

	page := svc.RecentLeads(context.Background(), nil, 1, 15)
	require.Zero(t, page.Total)
	require.Empty(t, page.Items)
}
