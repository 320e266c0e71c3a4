package port

import "github.com/sestevao/marketing-analytics/internal/core/domain"

// DataGenerator is the randomness seam of the analytics core. The production
// implementation draws from a seedable random source and an injectable
// clock, so tests can substitute a fixed seed or a canned fake.
type DataGenerator interface {
	// DailyMetrics returns a per-day series of days+1 entries covering the
	// dates from days ago up to today, in ascending order.
	DailyMetrics(days int) []domain.DailyMetric
	// Leads returns exactly count synthetic leads sorted by CreatedAt
	// descending. Ids are unique within one generator instance.
	Leads(count int) []domain.Lead
	// IntBetween returns a uniform random integer in [lo, hi].
	IntBetween(lo, hi int) int
}
