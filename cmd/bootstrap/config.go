package bootstrap

import (
	"booking-portal/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.APIConfig { return cfg.API },
	),
)
