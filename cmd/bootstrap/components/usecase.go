package components

import (
	"booking-portal/internal/pkg/clock"
	"booking-portal/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewResourceUseCase,
		usecase.NewAvailabilityUseCase,
		usecase.NewBookingUseCase,
		usecase.NewDashboardUseCase,
	),
)
