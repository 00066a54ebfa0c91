package view

import (
	"fmt"
	"reflect"
	"strings"

	"booking-portal/internal/infra/backend"
	"booking-portal/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

const GeneralFormMessage = "Please check the form and try again."

// FormErrors is what a form view renders next to its inputs. Fields is keyed
// by form field name; anything that cannot be attributed to an allowed field
// ends up in General.
type FormErrors struct {
	Fields  map[string]string `json:"fields,omitempty"`
	General string            `json:"general,omitempty"`
}

func (f *FormErrors) Empty() bool {
	return f == nil || (len(f.Fields) == 0 && f.General == "")
}

// FieldSet is the allow-list of field names a form may annotate.
type FieldSet struct {
	allowed map[string]struct{}
}

func NewFieldSet(names ...string) FieldSet {
	allowed := make(map[string]struct{}, len(names))
	for _, n := range names {
		allowed[n] = struct{}{}
	}
	return FieldSet{allowed: allowed}
}

var (
	LoginFields    = NewFieldSet("email", "password")
	RegisterFields = NewFieldSet(
		"first_name", "last_name", "phone_number", "email", "password", "confirm_password", "role",
	)
	ResourceFields = NewFieldSet(
		"name", "description", "type", "capacity", "address", "city", "country", "zip_code",
		"tags", "images", "cancellation_policy",
	)
	RuleFields = NewFieldSet("type", "day_of_week", "specific_date", "start_time", "end_time", "is_available")
	SlotFields = NewFieldSet("start_time", "end_time", "notes")
)

func (s FieldSet) Allows(field string) bool {
	_, ok := s.allowed[field]
	return ok
}

// Add files msg under field when allowed, otherwise as the general message.
// The first message per field wins.
func (s FieldSet) Add(f *FormErrors, field, msg string) {
	if !s.Allows(field) {
		if f.General == "" {
			f.General = msg
		}
		return
	}
	if f.Fields == nil {
		f.Fields = make(map[string]string)
	}
	if _, exists := f.Fields[field]; !exists {
		f.Fields[field] = msg
	}
}

// FromBackend decomposes a backend 422 detail array. Other failures and
// unrecognised shapes produce only a general message.
func (s FieldSet) FromBackend(err error) FormErrors {
	var out FormErrors
	var reqErr *backend.RequestError
	if !errs.As(err, &reqErr) {
		out.General = backend.Message(err)
		return out
	}
	issues, ok := reqErr.ValidationIssues()
	if !ok {
		out.General = reqErr.Message
		return out
	}
	for _, issue := range issues {
		s.Add(&out, issue.Field(), issue.Msg)
	}
	if len(out.Fields) == 0 && out.General == "" {
		out.General = GeneralFormMessage
	}
	return out
}

// FromBinding decomposes form binding failures. Field names are the form
// tags, see UseFormTagNames.
func (s FieldSet) FromBinding(err error) FormErrors {
	var out FormErrors
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		out.General = GeneralFormMessage
		return out
	}
	for _, fe := range verrs {
		s.Add(&out, fe.Field(), bindingMessage(fe))
	}
	return out
}

// UseFormTagNames makes validation errors report the form tag instead of the
// Go field name.
func UseFormTagNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "eqfield":
		return "Does not match."
	default:
		return "Invalid value."
	}
}

// FormError carries FormErrors through an error return.
type FormError struct {
	Errors FormErrors
	cause  error
}

func NewFormError(fe FormErrors, cause error) *FormError {
	return &FormError{Errors: fe, cause: cause}
}

func (e *FormError) Error() string {
	if e.Errors.General != "" {
		return e.Errors.General
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return GeneralFormMessage
}

func (e *FormError) Unwrap() error {
	return e.cause
}

// Field builds a FormError annotating a single field.
func (s FieldSet) Field(field, msg string, cause error) *FormError {
	var fe FormErrors
	s.Add(&fe, field, msg)
	return NewFormError(fe, cause)
}

// Backend wraps a backend failure as a FormError.
func (s FieldSet) Backend(err error) *FormError {
	return NewFormError(s.FromBackend(err), err)
}

// Binding wraps a binding failure as a FormError.
func (s FieldSet) Binding(err error) *FormError {
	return NewFormError(s.FromBinding(err), err)
}
