package web

import (
	"context"
	"time"

	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus"
)

// newHealthHandler serves /live and /ready. The server is ready once the
// database answers a ping.
func newHealthHandler(store Store, registry prometheus.Registerer) healthcheck.Handler {
	health := healthcheck.NewMetricsHandler(registry, "bookshelf")
	health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(1000))
	health.AddReadinessCheck("database", healthcheck.Timeout(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return store.Ping(ctx)
	}, 3*time.Second))
	return health
}
