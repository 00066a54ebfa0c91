package web

import (
	"net/http"

	"booking-portal/internal/domain/user"
	reqdto "booking-portal/internal/handler/dto/request"
	resdto "booking-portal/internal/handler/dto/response"
	"booking-portal/internal/handler/httperr"
	"booking-portal/internal/session"
	"booking-portal/internal/usecase"
	"booking-portal/internal/view"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	store       *session.Store
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, store *session.Store) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		store:       store,
	}
}

// @Summary Login form
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.FormPage
// @Router /login [get]
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.NewFormPage(reqdto.LoginRequest{}))
}

// @Summary User login
// @Description Exchanges credentials for a session and redirects by role
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 303 "Redirect to /resources (customer) or /dashboard"
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithBinding(c, view.LoginFields, err)
		return
	}

	outcome, err := h.authUseCase.Login(requestContext(c), req)
	if err != nil {
		abortWithError(c, view.LoginFields.Backend(err))
		return
	}

	if err := h.store.Replace(c, outcome.Session); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Could not start the session", nil)
		return
	}
	redirect(c, outcome.Redirect)
}

// @Summary Registration form
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.FormPage
// @Router /register [get]
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.NewFormPage(reqdto.RegisterRequest{Role: string(user.RoleCustomer)}))
}

// @Summary Register
// @Description Creates an account and redirects to the login form
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param first_name formData string true "First name"
// @Param last_name formData string true "Last name"
// @Param phone_number formData string true "Phone number"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param confirm_password formData string true "Password confirmation"
// @Param role formData string true "CUSTOMER or BUSINESS_OWNER"
// @Success 303 "Redirect to /login"
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithBinding(c, view.RegisterFields, err)
		return
	}

	if err := h.authUseCase.Register(requestContext(c), req); err != nil {
		abortWithError(c, err)
		return
	}
	redirect(c, usecase.PathLogin)
}

// @Summary Logout
// @Description Clears both session cookies
// @Tags auth
// @Success 303 "Redirect to /login"
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Clear(c)
	redirect(c, usecase.PathLogin)
}

// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Router /session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromSession(session.From(c)))
}
