package components

import (
	"consultbook/internal/handler"
	"consultbook/internal/handler/api"
	"consultbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewAdminHandler,
		middleware.NewAdminAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
