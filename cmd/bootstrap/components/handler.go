package components

import (
	"booking-portal/internal/handler"
	"booking-portal/internal/handler/middleware"
	"booking-portal/internal/handler/web"
	"booking-portal/internal/pkg/config"
	"booking-portal/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		web.NewAuthHandler,
		web.NewResourceHandler,
		web.NewAvailabilityHandler,
		web.NewBookingHandler,
		web.NewDashboardHandler,
	),
	fx.Invoke(registerRoutes),
)

type routerParams struct {
	fx.In

	Engine       *gin.Engine
	Config       config.Config
	Logger       *middleware.Logger
	Store        *session.Store
	Gatherer     prometheus.Gatherer
	Auth         *web.AuthHandler
	Resource     *web.ResourceHandler
	Availability *web.AvailabilityHandler
	Booking      *web.BookingHandler
	Dashboard    *web.DashboardHandler
}

func registerRoutes(p routerParams) {
	handler.NewRouter(p.Engine, handler.RouterDeps{
		Config:   p.Config,
		Logger:   p.Logger,
		Store:    p.Store,
		Gatherer: p.Gatherer,
		Handlers: handler.Handlers{
			Auth:         p.Auth,
			Resource:     p.Resource,
			Availability: p.Availability,
			Booking:      p.Booking,
			Dashboard:    p.Dashboard,
		},
	})
}
