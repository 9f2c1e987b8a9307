package components

import (
	"consultbook/internal/calendar"
	"consultbook/internal/pkg/config"
	"consultbook/internal/usecase/shared"

	"go.uber.org/fx"
)

var CalendarModule = fx.Module("calendar",
	fx.Provide(
		NewAdapters,
		calendar.NewSyncService,
		func(s *calendar.SyncService) shared.CalendarMirror { return s },
	),
)

func NewAdapters(cfg config.CalendarConfig) []calendar.Adapter {
	return []calendar.Adapter{
		calendar.NewGoogleAdapter(cfg),
		calendar.NewOutlookAdapter(cfg),
	}
}
