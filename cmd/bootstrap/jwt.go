package bootstrap

import (
	"consultbook/internal/pkg/config"
	"consultbook/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.AdminConfig) *jwt.Service {
	return jwt.NewService(cfg.JWTSecret, cfg.TokenTTL)
}
