//go:build unit

package web_test

import (
	"net/http"
	"time"

	"booking-portal/internal/domain/user"
	"booking-portal/internal/handler"
	"booking-portal/internal/handler/middleware"
	"booking-portal/internal/handler/web"
	"booking-portal/internal/pkg/clock"
	"booking-portal/internal/pkg/config"
	"booking-portal/internal/session"
	"booking-portal/internal/usecase"
	"booking-portal/tests/common/authtest"
	"booking-portal/tests/common/builder"
	mockbackend "booking-portal/tests/mock/backend"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// portalSuite serves the full router with real usecases over a mocked
// backend.
type portalSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockAPI  *mockbackend.MockAPI
	cfg      config.Config
	today    time.Time
	customer user.User
	owner    user.User
}

func (s *portalSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.cfg = config.NewTestConfig()
	s.today = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	s.customer = builder.NewUserBuilder().BuildTokenUser()
	s.owner = builder.NewUserBuilder().AsOwner().BuildTokenUser()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAPI = mockbackend.NewMockAPI(s.mockCtrl)

	store := session.NewStore(s.cfg, nil)
	clk := clock.NewFixedClock(s.today.Add(10 * time.Hour))

	s.router = gin.New()
	handler.NewRouter(s.router, handler.RouterDeps{
		Config:   s.cfg,
		Logger:   middleware.NewLogger(s.cfg.Log),
		Store:    store,
		Gatherer: prometheus.NewRegistry(),
		Handlers: handler.Handlers{
			Auth:         web.NewAuthHandler(usecase.NewAuthUseCase(s.mockAPI), store),
			Resource:     web.NewResourceHandler(usecase.NewResourceUseCase(s.mockAPI)),
			Availability: web.NewAvailabilityHandler(usecase.NewAvailabilityUseCase(s.mockAPI)),
			Booking:      web.NewBookingHandler(usecase.NewBookingUseCase(s.mockAPI, clk)),
			Dashboard:    web.NewDashboardHandler(usecase.NewDashboardUseCase(s.mockAPI)),
		},
	})
}

func (s *portalSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *portalSuite) signedIn(u user.User) []*http.Cookie {
	return authtest.SessionCookies(s.T(), s.cfg, u)
}
