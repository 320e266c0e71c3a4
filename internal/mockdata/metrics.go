package mockdata

import (
	"github.com/sestevao/marketing-analytics/internal/core/domain"
)

// DailyMetrics returns a series of days+1 entries with dates running from
// days ago up to today, one calendar day apart. Each field is drawn
// independently, so no cross-field relation holds: clicks can exceed
// impressions and leads can exceed conversions. That matches what callers
// expect from mock data and is deliberate.
func (s *Source) DailyMetrics(days int) []domain.DailyMetric {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := domain.NewDay(s.now().AddDate(0, 0, -days))

	data := make([]domain.DailyMetric, 0, days+1)
	for i := 0; i <= days; i++ {
		data = append(data, domain.DailyMetric{
			Date:        domain.Day{Time: start.AddDate(0, 0, i)},
			Impressions: s.intBetween(100, 1000),
			Clicks:      s.intBetween(10, 100),
			Conversions: s.intBetween(5, 20),
			Leads:       s.intBetween(0, 5),
			Spend:       s.intBetween(10, 50),
		})
	}
	return data
}
