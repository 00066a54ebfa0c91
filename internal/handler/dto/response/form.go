package response

import "booking-portal/internal/view"

// FormPage is a form view: the values to show in the inputs and, after a
// failed submit, the messages to show next to them.
type FormPage struct {
	Form   any              `json:"form"`
	Errors *view.FormErrors `json:"errors,omitempty"`
}

func NewFormPage(form any) *FormPage {
	return &FormPage{Form: form}
}
