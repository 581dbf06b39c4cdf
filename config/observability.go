package config

import "strings"

// ObservabilityMetricsConfig controls StatsD metrics emission.
type ObservabilityMetricsConfig struct {
	// Enabled turns metric emission on. Requires a StatsD address.
	Enabled bool `env:"METRICS_ENABLED" envDefault:"false"`

	// StatsdAddress is the UDP host:port of the StatsD endpoint.
	StatsdAddress string `env:"METRICS_STATSD_ADDRESS" envDefault:""`

	// Prefix is prepended to every metric name.
	Prefix string `env:"METRICS_PREFIX" envDefault:"taskhive"`
}

// Sanitize applies guardrails to metrics configuration values.
func (c *ObservabilityMetricsConfig) Sanitize() {
	c.StatsdAddress = strings.TrimSpace(c.StatsdAddress)
	c.Prefix = strings.TrimSpace(c.Prefix)
	if c.StatsdAddress == "" {
		c.Enabled = false
	}
}

// IsEnabled reports whether metrics should be emitted.
func (c ObservabilityMetricsConfig) IsEnabled() bool {
	return c.Enabled && c.StatsdAddress != ""
}

// ObservabilityConfig groups observability configuration.
type ObservabilityConfig struct {
	Metrics ObservabilityMetricsConfig
}

// Sanitize applies guardrails to observability configuration values.
func (o *ObservabilityConfig) Sanitize() {
	o.Metrics.Sanitize()
}
