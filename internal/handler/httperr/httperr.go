package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Messages for failures that carry no backend text.
const (
	MessageInvalidRequest  = "Invalid request"
	MessageInvalidID       = "Invalid id"
	MessageSlotUnavailable = "The selected slot is no longer available."
	MessageInternal        = "Internal server error"
)

// Response is the body of every failed view request. Detail holds the form
// errors when the failure belongs to a form.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError keeps err on the gin context for the request log and
// answers with msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func AbortInternal(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, NewResponse(http.StatusInternalServerError, MessageInternal, nil))
}
