package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration
// and fills derived defaults. Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be > 0 (got %v)", c.Server.ShutdownTimeout)
	}

	if err := c.Dictionary.validate(); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}

	if c.Batch.Delay < 0 {
		return fmt.Errorf("batch.delay must be >= 0 (got %v)", c.Batch.Delay)
	}
	if c.RateLimit.PerMinute < 0 {
		return fmt.Errorf("rate_limit.per_minute must be >= 0 (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}

func (d *DictionaryConfig) validate() error {
	d.BaseURL = strings.TrimRight(strings.TrimSpace(d.BaseURL), "/")
	u, err := url.Parse(d.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must be an http(s) URL (got %q)", d.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base_url must include a host (got %q)", d.BaseURL)
	}
	if d.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", d.Timeout)
	}
	if strings.TrimSpace(d.UserAgent) == "" {
		d.UserAgent = DefaultUserAgent
	}
	return nil
}
