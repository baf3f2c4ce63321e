// Package cli holds the startup plumbing shared by the pipeline commands.
package cli

import (
	"context"
	"log"
	"time"

	"github.com/thetascott/AWS-Data-Warehouse/internal/config"
	"github.com/thetascott/AWS-Data-Warehouse/internal/metrics"
	"github.com/thetascott/AWS-Data-Warehouse/internal/metrics/datadog"
)

// InitMetrics wires the configured metrics backend and returns a shutdown
// function to defer in main. An unknown or empty backend name leaves
// instrumentation disabled; metrics are never load-bearing, so backend init
// failures log and continue.
func InitMetrics(ctx context.Context, cfg config.Config, job string, logger *log.Logger) func() {
	switch cfg.MetricsBackend {
	case "datadog":
		b, err := datadog.NewBackend(ctx, datadog.Options{
			JobName: job,
			Tags:    datadog.ParseTagsCSV(cfg.MetricsTags),
		})
		if err != nil {
			logger.Printf("metrics: datadog init failed: %v; metrics disabled", err)
			return func() {}
		}
		metrics.SetBackend(b)
		logger.Printf("metrics: backend=datadog job=%s", job)
		return func() {
			if err := metrics.Close(); err != nil {
				logger.Printf("metrics: close: %v", err)
			}
		}

	case "", "none":
		return func() {}

	default:
		logger.Printf("metrics: unknown backend %q; metrics disabled", cfg.MetricsBackend)
		return func() {}
	}
}

// Elapsed formats a duration for completion logs.
func Elapsed(start time.Time) time.Duration {
	return time.Since(start).Truncate(time.Millisecond)
}
