// Package mockdata synthesises the analytics numbers and lead records the
// service reports. Nothing here touches a real ad platform: every value is
// drawn from a random source, freshly on each call, and never persisted.
package mockdata

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Source generates mock analytics data from a seedable random source and an
// injectable clock. One Source serves all HTTP requests, so a mutex guards
// every draw from the underlying rand.Rand and ULID entropy. Construct a
// per-test Source with a fixed seed and clock for deterministic output.
type Source struct {
	mu      sync.Mutex
	rnd     *rand.Rand
	now     func() time.Time
	entropy *ulid.MonotonicEntropy
}

// New returns a Source drawing from rnd and reading the current time from
// now.
func New(rnd *rand.Rand, now func() time.Time) *Source {
	return &Source{
		rnd:     rnd,
		now:     now,
		entropy: ulid.Monotonic(rnd, 0),
	}
}

// NewDefault returns a Source seeded from the wall clock, for production
// use.
func NewDefault() *Source {
	return New(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// IntBetween returns a uniform random integer in [lo, hi].
func (s *Source) IntBetween(lo, hi int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intBetween(lo, hi)
}

// intBetween is IntBetween without locking; callers must hold mu.
func (s *Source) intBetween(lo, hi int) int {
	return lo + s.rnd.Intn(hi-lo+1)
}

func (s *Source) pick(pool []string) string {
	return pool[s.rnd.Intn(len(pool))]
}

// newID returns a token unique within this Source. ULIDs built from the
// monotonic entropy reader never repeat even within one timestamp.
func (s *Source) newID() string {
	return ulid.MustNew(ulid.Timestamp(s.now()), s.entropy).String()
}
