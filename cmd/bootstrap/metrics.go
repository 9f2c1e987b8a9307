package bootstrap

import (
	"consultbook/internal/observability/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewDefault,
	),
)
