package configs

import "time"

// Auth configures token issuing. Secret signs the HS256 session tokens and
// must be overridden outside local development. TokenTTL is how long an
// issued token stays valid.
type Auth struct {
	Secret   string        `env:"SECRET" envDefault:"local-dev-secret"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}
