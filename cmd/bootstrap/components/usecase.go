package components

import (
	"consultbook/internal/pkg/clock"
	"consultbook/internal/usecase/commands"
	"consultbook/internal/usecase/coupons"
	"consultbook/internal/usecase/queries"
	"consultbook/internal/usecase/schedule"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	schedule.NewResolver,
	coupons.NewValidator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewPaymentUseCase,
		commands.NewReleaseUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSlotQueries,
		queries.NewBookingQueries,
	),
)
