package web

import (
	"context"
	"errors"
	"net/http"

	"booking-portal/internal/handler/httperr"
	"booking-portal/internal/infra/backend"
	"booking-portal/internal/pkg/errs"
	"booking-portal/internal/session"
	"booking-portal/internal/usecase"
	"booking-portal/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestContext carries the request's session token to the backend client.
func requestContext(c *gin.Context) context.Context {
	return backend.WithToken(c.Request.Context(), session.From(c).Token)
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
	c.Abort()
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidIdentifier), httperr.MessageInvalidID, nil)
		return uuid.Nil, false
	}
	return id, true
}

func abortWithBinding(c *gin.Context, fields view.FieldSet, err error) {
	formErr := fields.Binding(errs.Mark(err, errs.ErrFormValidation))
	httperr.AbortWithError(c, http.StatusUnprocessableEntity, formErr, view.GeneralFormMessage, formErr.Errors)
}

// abortWithError renders a usecase failure. Backend outages and 5xx become
// 502; other backend statuses are passed through.
func abortWithError(c *gin.Context, err error) {
	var formErr *view.FormError
	switch {
	case errs.Is(err, errs.ErrSessionRequired):
		redirect(c, usecase.PathLogin)
	case errors.As(err, &formErr):
		msg := formErr.Errors.General
		if msg == "" {
			msg = view.GeneralFormMessage
		}
		httperr.AbortWithError(c, formStatus(err), err, msg, formErr.Errors)
	case errs.Is(err, errs.ErrSlotUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.MessageSlotUnavailable, nil)
	case errs.Is(err, errs.ErrInvalidDate), errs.Is(err, errs.ErrInvalidIdentifier):
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MessageInvalidRequest, nil)
	default:
		httperr.AbortWithError(c, backendStatus(err), err, backend.Message(err), nil)
	}
}

// formStatus is 422 for local form checks and the backend's status otherwise.
func formStatus(err error) int {
	var reqErr *backend.RequestError
	if !errs.As(err, &reqErr) {
		return http.StatusUnprocessableEntity
	}
	return backendStatus(reqErr)
}

func backendStatus(err error) int {
	status := backend.StatusOf(err)
	if status == 0 || status >= 500 {
		return http.StatusBadGateway
	}
	return status
}
