package web

import (
	"net/http"

	reqdto "booking-portal/internal/handler/dto/request"
	"booking-portal/internal/usecase"
	"booking-portal/internal/view"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityUseCase usecase.AvailabilityUseCase
}

func NewAvailabilityHandler(availabilityUseCase usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityUseCase: availabilityUseCase}
}

// @Summary Availability rules
// @Tags availability
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} usecase.AvailabilityPage
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /dashboard/resources/availability/{id} [get]
func (h *AvailabilityHandler) Page(c *gin.Context) {
	resourceID, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, err := h.availabilityUseCase.Page(requestContext(c), resourceID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Add availability rule
// @Description Creates the rule and returns the page with it appended
// @Tags availability
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} usecase.AvailabilityPage
// @Failure 422 {object} httperr.Response
// @Router /dashboard/resources/availability/{id} [post]
func (h *AvailabilityHandler) AddRule(c *gin.Context) {
	resourceID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var form reqdto.RuleForm
	if err := c.ShouldBind(&form); err != nil {
		abortWithBinding(c, view.RuleFields, err)
		return
	}
	page, err := h.availabilityUseCase.AddRule(requestContext(c), resourceID, form)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Delete availability rule
// @Tags availability
// @Produce json
// @Param id path string true "Resource ID"
// @Param ruleId path string true "Rule ID"
// @Success 200 {object} usecase.AvailabilityPage
// @Failure 400 {object} httperr.Response
// @Router /dashboard/resources/availability/{id}/delete/{ruleId} [post]
func (h *AvailabilityHandler) RemoveRule(c *gin.Context) {
	resourceID, ok := pathID(c, "id")
	if !ok {
		return
	}
	ruleID, ok := pathID(c, "ruleId")
	if !ok {
		return
	}
	page, err := h.availabilityUseCase.RemoveRule(requestContext(c), resourceID, ruleID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
