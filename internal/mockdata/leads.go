package mockdata

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sestevao/marketing-analytics/internal/core/domain"
)

var (
	firstNames = []string{"John", "Jane", "Michael", "Emily", "Chris", "Sarah", "David", "Laura"}
	lastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis"}
	domains    = []string{"gmail.com", "yahoo.com", "outlook.com", "company.com"}
)

// Leads returns exactly count synthetic leads sorted by CreatedAt
// descending. CreatedAt falls on "now" shifted back a whole number of days
// in [0, 30]; only the day offset varies, not the time of day.
func (s *Source) Leads(count int) []domain.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	leads := make([]domain.Lead, 0, count)
	for i := 0; i < count; i++ {
		first := s.pick(firstNames)
		last := s.pick(lastNames)

		leads = append(leads, domain.Lead{
			ID:        s.newID(),
			Name:      first + " " + last,
			Email:     strings.ToLower(fmt.Sprintf("%s.%s%d@%s", first, last, s.intBetween(1, 99), s.pick(domains))),
			Phone:     fmt.Sprintf("+1 %d-%d-%d", s.intBetween(200, 999), s.intBetween(200, 999), s.intBetween(1000, 9999)),
			Status:    domain.LeadStatuses[s.rnd.Intn(len(domain.LeadStatuses))],
			CreatedAt: s.now().AddDate(0, 0, -s.intBetween(0, 30)),
			Campaign:  fmt.Sprintf("Campaign #%d", s.intBetween(100, 999)),
		})
	}

	SortLeads(leads)
	return leads
}

// SortLeads orders leads by CreatedAt descending, keeping the existing
// order of equal timestamps. The dashboard aggregator applies the same
// ordering to the combined list before paginating.
func SortLeads(leads []domain.Lead) {
	slices.SortStableFunc(leads, func(a, b domain.Lead) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
