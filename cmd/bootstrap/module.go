package bootstrap

import (
	"booking-portal/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	ObservabilityModule,
	BackendModule,
	SessionModule,
	components.UseCaseModule,
	components.HandlerModule,
)
