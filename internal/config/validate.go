package config

import (
	"fmt"
	"strings"
)

const maxCandidateLimit = 1000

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be in [4, 31] (got %d)", c.Auth.BcryptCost)
	}

	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.Fluent.Enabled && (c.Fluent.Host == "" || c.Fluent.Port <= 0) {
		return fmt.Errorf("fluent.host and fluent.port are required when fluent is enabled")
	}

	if c.Events.Enabled && strings.TrimSpace(c.Events.URL) == "" {
		return fmt.Errorf("events.url is required when events are enabled")
	}

	if c.Scheduler.Enabled && strings.TrimSpace(c.Scheduler.TokenCleanup) == "" {
		return fmt.Errorf("scheduler.token_cleanup is required when the scheduler is enabled")
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMin <= 0 || c.RateLimit.AuthPerMin <= 0) {
		return fmt.Errorf("rate_limit limits must be > 0")
	}

	return nil
}

func (s SearchConfig) validate() error {
	if s.RecentLimit <= 0 {
		return fmt.Errorf("recent_limit must be > 0 (got %d)", s.RecentLimit)
	}
	if s.ResultLimit <= 0 {
		return fmt.Errorf("result_limit must be > 0 (got %d)", s.ResultLimit)
	}
	if s.CandidateLimit < s.ResultLimit {
		return fmt.Errorf("candidate_limit (%d) must be >= result_limit (%d)", s.CandidateLimit, s.ResultLimit)
	}
	if s.CandidateLimit > maxCandidateLimit {
		return fmt.Errorf("candidate_limit must be <= %d (got %d)", maxCandidateLimit, s.CandidateLimit)
	}
	return nil
}
