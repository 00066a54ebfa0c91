package web

import (
	"net/http"

	reqdto "booking-portal/internal/handler/dto/request"
	resdto "booking-portal/internal/handler/dto/response"
	"booking-portal/internal/usecase"
	"booking-portal/internal/view"

	"github.com/gin-gonic/gin"
)

const PathOwnerResources = "/dashboard/resources"

type ResourceHandler struct {
	resourceUseCase usecase.ResourceUseCase
}

func NewResourceHandler(resourceUseCase usecase.ResourceUseCase) *ResourceHandler {
	return &ResourceHandler{resourceUseCase: resourceUseCase}
}

// @Summary Browse resources
// @Description Public catalog; every card offers a booking action
// @Tags resources
// @Produce json
// @Success 200 {object} view.ResourceList
// @Failure 502 {object} httperr.Response
// @Router /resources [get]
func (h *ResourceHandler) Browse(c *gin.Context) {
	h.list(c, "Resources", view.PublicCapabilities)
}

// @Summary Manage resources
// @Description Owner list with edit, availability and delete actions
// @Tags resources
// @Produce json
// @Success 200 {object} view.ResourceList
// @Failure 502 {object} httperr.Response
// @Router /dashboard/resources [get]
func (h *ResourceHandler) Manage(c *gin.Context) {
	h.list(c, "My Resources", view.OwnerCapabilities)
}

func (h *ResourceHandler) list(c *gin.Context, heading string, caps view.Capabilities) {
	list, err := h.resourceUseCase.List(requestContext(c), heading, caps)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary New resource form
// @Tags resources
// @Produce json
// @Success 200 {object} resdto.FormPage
// @Router /dashboard/resources/new [get]
func (h *ResourceHandler) NewForm(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.NewFormPage(h.resourceUseCase.NewForm()))
}

// @Summary Create resource
// @Tags resources
// @Accept x-www-form-urlencoded
// @Success 303 "Redirect to /dashboard/resources"
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /dashboard/resources/new [post]
func (h *ResourceHandler) Create(c *gin.Context) {
	var form reqdto.ResourceForm
	if err := c.ShouldBind(&form); err != nil {
		abortWithBinding(c, view.ResourceFields, err)
		return
	}
	if _, err := h.resourceUseCase.Create(requestContext(c), form); err != nil {
		abortWithError(c, err)
		return
	}
	redirect(c, PathOwnerResources)
}

// @Summary Edit resource form
// @Description Form pre-filled from the stored resource
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.FormPage
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /dashboard/resources/edit/{id} [get]
func (h *ResourceHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	form, err := h.resourceUseCase.EditForm(requestContext(c), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewFormPage(form))
}

// @Summary Update resource
// @Tags resources
// @Accept x-www-form-urlencoded
// @Param id path string true "Resource ID"
// @Success 303 "Redirect to /dashboard/resources"
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /dashboard/resources/edit/{id} [post]
func (h *ResourceHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var form reqdto.ResourceForm
	if err := c.ShouldBind(&form); err != nil {
		abortWithBinding(c, view.ResourceFields, err)
		return
	}
	if _, err := h.resourceUseCase.Update(requestContext(c), id, form); err != nil {
		abortWithError(c, err)
		return
	}
	redirect(c, PathOwnerResources)
}

// @Summary Delete resource
// @Tags resources
// @Param id path string true "Resource ID"
// @Success 303 "Redirect to /dashboard/resources"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /dashboard/resources/delete/{id} [post]
func (h *ResourceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.resourceUseCase.Delete(requestContext(c), id); err != nil {
		abortWithError(c, err)
		return
	}
	redirect(c, PathOwnerResources)
}
