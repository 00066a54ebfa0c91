package backend

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"booking-portal/internal/pkg/errs"
)

const (
	MessageUnreachable = "Cannot reach the server."
	MessageUnknown     = "An unknown server error occurred."
)

// Sentinels are attached with errs.Mark; match them with errs.Is, not the
// standard errors.Is.
var (
	ErrUnreachable       = errors.New("booking backend unreachable")
	ErrMalformedResponse = errors.New("malformed backend response")
)

// RequestError is the single failure type of the wrapper. Message is always
// safe to show to an end user. Status is 0 when the server was never reached.
type RequestError struct {
	Status  int
	Message string
	Detail  json.RawMessage
	cause   error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.cause
}

// ValidationIssue is one entry of a 422 detail array.
type ValidationIssue struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

// Field returns the innermost named location, skipping the request part
// prefix ("body", "query").
func (v ValidationIssue) Field() string {
	for i := len(v.Loc) - 1; i >= 0; i-- {
		name, ok := v.Loc[i].(string)
		if !ok {
			continue
		}
		switch name {
		case "body", "query", "path", "header":
			return ""
		}
		return name
	}
	return ""
}

// ValidationIssues decodes Detail as a validation array. ok is false when the
// detail has any other shape.
func (e *RequestError) ValidationIssues() ([]ValidationIssue, bool) {
	if len(e.Detail) == 0 {
		return nil, false
	}
	var issues []ValidationIssue
	if err := json.Unmarshal(e.Detail, &issues); err != nil || len(issues) == 0 {
		return nil, false
	}
	for _, issue := range issues {
		if issue.Msg == "" {
			return nil, false
		}
	}
	return issues, true
}

func newStatusError(status int, body []byte) *RequestError {
	e := &RequestError{Status: status, Message: MessageUnknown}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		e.cause = errs.Mark(err, ErrMalformedResponse)
		return e
	}
	detail := bytes.TrimSpace(envelope.Detail)
	if len(detail) == 0 || bytes.Equal(detail, []byte("null")) {
		return e
	}
	e.Detail = detail

	var text string
	if err := json.Unmarshal(detail, &text); err == nil {
		if text != "" {
			e.Message = text
		}
		return e
	}
	if issues, ok := e.ValidationIssues(); ok {
		msgs := make([]string, 0, len(issues))
		for _, issue := range issues {
			msgs = append(msgs, issue.Msg)
		}
		e.Message = strings.Join(msgs, "; ")
		return e
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, detail); err == nil {
		e.Message = compact.String()
	}
	return e
}

func newUnreachableError(cause error) *RequestError {
	return &RequestError{Message: MessageUnreachable, cause: errs.Mark(cause, ErrUnreachable)}
}

func newMalformedError(status int, cause error) *RequestError {
	return &RequestError{Status: status, Message: MessageUnknown, cause: errs.Mark(cause, ErrMalformedResponse)}
}

// Message returns the text a view may display for err.
func Message(err error) string {
	var reqErr *RequestError
	if errs.As(err, &reqErr) {
		return reqErr.Message
	}
	return MessageUnknown
}

// StatusOf returns the backend status carried by err, or 0.
func StatusOf(err error) int {
	var reqErr *RequestError
	if errs.As(err, &reqErr) {
		return reqErr.Status
	}
	return 0
}
