package bootstrap

import (
	"log/slog"

	"github.com/taskhive/taskhive-api/config"
	"github.com/taskhive/taskhive-api/internal/observability/statsd"
)

// BuildMetricsSink creates a StatsD client from configuration. Returns
// nil when metrics are disabled or the endpoint cannot be dialed;
// metrics failures never block startup.
func BuildMetricsSink(cfg config.ObservabilityMetricsConfig, logger *slog.Logger) *statsd.Client {
	if !cfg.IsEnabled() {
		return nil
	}

	client, err := statsd.NewClient(statsd.Config{
		Enabled: true,
		Address: cfg.StatsdAddress,
		Prefix:  cfg.Prefix,
		Logger:  logger,
	})
	if err != nil {
		logger.Warn("metrics disabled: statsd dial failed", "address", cfg.StatsdAddress, "error", err)
		return nil
	}

	logger.Info("metrics enabled", "address", cfg.StatsdAddress, "prefix", cfg.Prefix)
	return client
}
