package web

import (
	"net/http"

	reqdto "booking-portal/internal/handler/dto/request"
	"booking-portal/internal/handler/httperr"
	"booking-portal/internal/session"
	"booking-portal/internal/usecase"
	"booking-portal/internal/view"

	"github.com/gin-gonic/gin"
)

const PathMyBookings = "/my-bookings"

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{bookingUseCase: bookingUseCase}
}

// @Summary Resource detail
// @Description Resource with the day's slots; ?slot=<index> also prices that slot
// @Tags bookings
// @Produce json
// @Param id path string true "Resource ID"
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Param slot query int false "Index of the slot to price"
// @Success 200 {object} usecase.ResourceDetail
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id} [get]
func (h *BookingHandler) Detail(c *gin.Context) {
	resourceID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.DetailQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MessageInvalidRequest, nil)
		return
	}
	detail, err := h.bookingUseCase.Detail(requestContext(c), session.From(c), resourceID, q)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// @Summary Price a slot
// @Tags bookings
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path string true "Resource ID"
// @Param start_time formData string true "Slot start"
// @Param end_time formData string true "Slot end"
// @Success 200 {object} booking.PriceQuote
// @Failure 422 {object} httperr.Response
// @Router /resources/{id}/price [post]
func (h *BookingHandler) Quote(c *gin.Context) {
	resourceID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SlotRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithBinding(c, view.SlotFields, err)
		return
	}
	quote, err := h.bookingUseCase.Quote(requestContext(c), resourceID, req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// @Summary Book a slot
// @Tags bookings
// @Accept x-www-form-urlencoded
// @Param id path string true "Resource ID"
// @Param start_time formData string true "Slot start"
// @Param end_time formData string true "Slot end"
// @Param notes formData string false "Notes for the provider"
// @Success 303 "Redirect to /my-bookings"
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /resources/{id}/book [post]
func (h *BookingHandler) Book(c *gin.Context) {
	resourceID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.BookingRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithBinding(c, view.SlotFields, err)
		return
	}
	if _, err := h.bookingUseCase.Book(requestContext(c), resourceID, req); err != nil {
		abortWithError(c, err)
		return
	}
	redirect(c, PathMyBookings)
}

// @Summary My bookings
// @Tags bookings
// @Produce json
// @Success 200 {object} usecase.BookingsPage
// @Failure 502 {object} httperr.Response
// @Router /my-bookings [get]
func (h *BookingHandler) MyBookings(c *gin.Context) {
	page, err := h.bookingUseCase.MyBookings(requestContext(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Booking detail
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} booking.Booking
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /my-bookings/{id} [get]
func (h *BookingHandler) BookingDetail(c *gin.Context) {
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	found, err := h.bookingUseCase.BookingDetail(requestContext(c), bookingID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// @Summary Cancel booking
// @Description Cancels the booking and returns the list with only that entry changed
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} usecase.BookingsPage
// @Failure 400 {object} httperr.Response
// @Router /my-bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, err := h.bookingUseCase.Cancel(requestContext(c), bookingID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
