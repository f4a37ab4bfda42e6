package bootstrap

import (
	"weekly-booking/internal/pkg/jwt"
	"weekly-booking/internal/pkg/settings"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(s settings.Settings) *jwt.Service {
	return jwt.NewService(s.SessionSecret)
}
