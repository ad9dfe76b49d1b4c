package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	if c.Search.MaxResults <= 0 {
		return fmt.Errorf("search.max_results must be > 0 (got %d)", c.Search.MaxResults)
	}

	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.RevealLimit <= 0 {
		return fmt.Errorf("reveal_limit must be > 0 (got %d)", r.RevealLimit)
	}
	if r.RevealWindow <= 0 {
		return fmt.Errorf("reveal_window must be > 0 (got %v)", r.RevealWindow)
	}
	if r.SearchLimit <= 0 {
		return fmt.Errorf("search_limit must be > 0 (got %d)", r.SearchLimit)
	}
	if r.SearchWindow <= 0 {
		return fmt.Errorf("search_window must be > 0 (got %v)", r.SearchWindow)
	}
	return nil
}
