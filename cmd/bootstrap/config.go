package bootstrap

import (
	"consultbook/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigSections derives the per-section configs from the root Config.
// Constructors depend on the section they actually read, not the whole
// Config. Kept separate from ConfigModule so test harnesses can inject
// their own Config and still get the sections.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.LogConfig { return cfg.Log },
	func(cfg config.Config) config.RedisConfig { return cfg.Redis },
	func(cfg config.Config) config.AdminConfig { return cfg.Admin },
	func(cfg config.Config) config.SchedulingConfig { return cfg.Scheduling },
	func(cfg config.Config) config.CouponConfig { return cfg.Coupons },
	func(cfg config.Config) config.CalendarConfig { return cfg.Calendar },
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	ConfigSections,
)
