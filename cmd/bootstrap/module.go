package bootstrap

import (
	"consultbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	MetricsModule,
	JWTModule,
	components.PersistenceModule,
	components.CalendarModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
