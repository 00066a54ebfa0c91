//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"booking-portal/cmd/bootstrap"
	"booking-portal/cmd/bootstrap/components"
	"booking-portal/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Fake booking backend
// ------------------------------------------------------------

// Backend is an in-process stand-in for the booking API. Tests register
// handlers per route and read back the Authorization header of every call.
type Backend struct {
	*httptest.Server

	mu         sync.Mutex
	routes     map[string]http.HandlerFunc
	authHeader map[string]string
}

func newBackend() *Backend {
	b := &Backend{routes: map[string]http.HandlerFunc{}, authHeader: map[string]string{}}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	return b
}

// Handle registers fn for a "METHOD /path" key.
func (b *Backend) Handle(route string, fn http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[route] = fn
}

// Reset forgets every route and recorded header.
func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes = map[string]http.HandlerFunc{}
	b.authHeader = map[string]string{}
}

// AuthorizationFor returns the Authorization header last seen on route.
func (b *Backend) AuthorizationFor(route string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.authHeader[route]
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	route := r.Method + " " + r.URL.Path
	b.mu.Lock()
	fn, ok := b.routes[route]
	b.authHeader[route] = r.Header.Get("Authorization")
	b.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = fmt.Fprint(w, `{"detail":"Not Found"}`)
		return
	}
	fn(w, r)
}

// JSON answers with a fixed status and body.
func JSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = fmt.Fprint(w, body)
	}
}

// ------------------------------------------------------------
// Application wiring
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(
			func() config.Config { return cfg },
			func() config.APIConfig { return cfg.API },
		),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.ObservabilityModule,
		bootstrap.BackendModule,
		bootstrap.SessionModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("failed to start fx app: %v", err))
	}

	return router, app
}

// ------------------------------------------------------------
// Shared suite
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	Backend *Backend
	Config  config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)

	s.Backend = newBackend()
	t.Cleanup(s.Backend.Close)

	s.Config = config.NewTestConfig()
	s.Config.API.BaseURL = s.Backend.URL
	s.Config.API.Timeout = 5 * time.Second

	router, app := buildE2EApp(s.Config)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	s.Router = router
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	s.Backend.Reset()
}
