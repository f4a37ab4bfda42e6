package bootstrap

import (
	"weekly-booking/internal/pkg/config"
	"weekly-booking/internal/pkg/settings"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewSettings,
		NewAdminAccount,
	),
)

func NewSettings(cfg config.Config) (settings.Settings, error) {
	return settings.Load(cfg.Settings.Path)
}

// NewAdminAccount fails startup when the admin account file is absent.
func NewAdminAccount(cfg config.Config) (settings.AdminAccount, error) {
	return settings.LoadAdminAccount(cfg.Settings.AdminAccountPath)
}
