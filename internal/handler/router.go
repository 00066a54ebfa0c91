package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-portal/internal/handler/middleware"
	"booking-portal/internal/handler/web"
	"booking-portal/internal/pkg/config"
	"booking-portal/internal/session"
	"booking-portal/internal/usecase"
	"booking-portal/internal/view"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *web.AuthHandler
	Resource     *web.ResourceHandler
	Availability *web.AvailabilityHandler
	Booking      *web.BookingHandler
	Dashboard    *web.DashboardHandler
}

type RouterDeps struct {
	Config   config.Config
	Logger   *middleware.Logger
	Store    *session.Store
	Gatherer prometheus.Gatherer
	Handlers Handlers
}

func NewRouter(engine *gin.Engine, deps RouterDeps) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		view.UseFormTagNames(v)
	}
	setupMiddleware(engine, deps)
	setupRoutes(engine, deps)
}

func setupMiddleware(engine *gin.Engine, deps RouterDeps) {
	logger := deps.Logger.GetSlogLogger()
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(deps.Config.CORS, logger))
	// the session is needed by the request log and every view
	engine.Use(middleware.LoadSession(deps.Store))
	engine.Use(deps.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, deps RouterDeps) {
	h := deps.Handlers

	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	public := engine.Group("")
	addRoutes(public, []route{
		{Method: http.MethodGet, Path: "/login", Handler: h.Auth.LoginForm},
		{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
		{Method: http.MethodGet, Path: "/register", Handler: h.Auth.RegisterForm},
		{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
		{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
		{Method: http.MethodGet, Path: "/session", Handler: h.Auth.Session},
		{Method: http.MethodGet, Path: "/resources", Handler: h.Resource.Browse},
		{Method: http.MethodGet, Path: "/resources/:id", Handler: h.Booking.Detail},
		{Method: http.MethodPost, Path: "/resources/:id/price", Handler: h.Booking.Quote},
		{Method: http.MethodPost, Path: "/resources/:id/book", Handler: h.Booking.Book, Mw: []gin.HandlerFunc{middleware.RequireSession()}},
	})

	guarded := engine.Group("")
	guarded.Use(middleware.RequireSession())
	{
		addRoutes(guarded, []route{
			{Method: http.MethodGet, Path: "/dashboard", Handler: h.Dashboard.Dashboard},
			{Method: http.MethodGet, Path: "/my-bookings", Handler: h.Booking.MyBookings},
			{Method: http.MethodGet, Path: "/my-bookings/:id", Handler: h.Booking.BookingDetail},
			{Method: http.MethodPost, Path: "/my-bookings/:id/cancel", Handler: h.Booking.Cancel},
		})

		resources := guarded.Group("/dashboard/resources")
		addRoutes(resources, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Resource.Manage},
			{Method: http.MethodGet, Path: "/new", Handler: h.Resource.NewForm},
			{Method: http.MethodPost, Path: "/new", Handler: h.Resource.Create},
			{Method: http.MethodGet, Path: "/edit/:id", Handler: h.Resource.EditForm},
			{Method: http.MethodPost, Path: "/edit/:id", Handler: h.Resource.Update},
			{Method: http.MethodPost, Path: "/delete/:id", Handler: h.Resource.Delete},
			{Method: http.MethodGet, Path: "/availability/:id", Handler: h.Availability.Page},
			{Method: http.MethodPost, Path: "/availability/:id", Handler: h.Availability.AddRule},
			{Method: http.MethodPost, Path: "/availability/:id/delete/:ruleId", Handler: h.Availability.RemoveRule},
		})
	}

	engine.NoRoute(fallback)
}

// fallback sends unmatched paths to the dashboard with a session and to the
// login view without one.
func fallback(c *gin.Context) {
	target := usecase.PathLogin
	if middleware.Allow(session.From(c)) {
		target = usecase.PathDashboard
	}
	c.Redirect(http.StatusSeeOther, target)
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
