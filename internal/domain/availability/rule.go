package availability

import (
	"errors"
	"strings"
	"time"

	"booking-portal/internal/pkg/ptr"

	"github.com/google/uuid"
)

var (
	ErrInvalidRuleType  = errors.New("rule type must be REGULAR or EXCEPTION")
	ErrInvalidDayOfWeek = errors.New("invalid day of week")
	ErrInvalidDate      = errors.New("specific date must be YYYY-MM-DD")
	ErrInvalidTime      = errors.New("time must be HH:MM")
	ErrInvalidTimeRange = errors.New("start time must be before end time")
)

const (
	DateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type RuleType string

const (
	RuleTypeRegular   RuleType = "REGULAR"
	RuleTypeException RuleType = "EXCEPTION"
)

func NewRuleType(s string) (RuleType, error) {
	t := RuleType(strings.ToUpper(strings.TrimSpace(s)))
	if t != RuleTypeRegular && t != RuleTypeException {
		return "", ErrInvalidRuleType
	}
	return t, nil
}

type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

var weekdays = map[DayOfWeek]time.Weekday{
	Monday:    time.Monday,
	Tuesday:   time.Tuesday,
	Wednesday: time.Wednesday,
	Thursday:  time.Thursday,
	Friday:    time.Friday,
	Saturday:  time.Saturday,
	Sunday:    time.Sunday,
}

func NewDayOfWeek(s string) (DayOfWeek, error) {
	d := DayOfWeek(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := weekdays[d]; !ok {
		return "", ErrInvalidDayOfWeek
	}
	return d, nil
}

func (d DayOfWeek) Weekday() time.Weekday {
	return weekdays[d]
}

// Rule is an availability schedule entry as returned by the backend.
type Rule struct {
	ID           uuid.UUID  `json:"schedule_id"`
	ResourceID   *uuid.UUID `json:"resource_id,omitempty"`
	Type         RuleType   `json:"type"`
	DayOfWeek    *DayOfWeek `json:"day_of_week"`
	SpecificDate *string    `json:"specific_date"`
	StartTime    string     `json:"start_time"`
	EndTime      string     `json:"end_time"`
	IsAvailable  bool       `json:"is_available"`
}

// Label is the day name for recurring rules and the date for exceptions.
func (r Rule) Label() string {
	if r.DayOfWeek != nil {
		return string(*r.DayOfWeek)
	}
	if r.SpecificDate != nil {
		return *r.SpecificDate
	}
	return ""
}

// Window renders "09:00 - 17:00" from the backend's HH:MM:SS values.
func (r Rule) Window() string {
	return clip(r.StartTime) + " - " + clip(r.EndTime)
}

func clip(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

// Payload is the body of POST /resources/{id}/availability/.
// Exactly one of DayOfWeek and SpecificDate is set, selected by Type.
type Payload struct {
	Type         RuleType   `json:"type"`
	DayOfWeek    *DayOfWeek `json:"day_of_week"`
	SpecificDate *string    `json:"specific_date"`
	StartTime    string     `json:"start_time"`
	EndTime      string     `json:"end_time"`
	IsAvailable  bool       `json:"is_available"`
}

func NewPayload(t RuleType, day, date, start, end string, available bool) (Payload, error) {
	startAt, err := parseClock(start)
	if err != nil {
		return Payload{}, err
	}
	endAt, err := parseClock(end)
	if err != nil {
		return Payload{}, err
	}
	if !startAt.Before(endAt) {
		return Payload{}, ErrInvalidTimeRange
	}

	p := Payload{
		Type:        t,
		StartTime:   startAt.Format(timeLayout),
		EndTime:     endAt.Format(timeLayout),
		IsAvailable: available,
	}

	switch t {
	case RuleTypeRegular:
		d, err := NewDayOfWeek(day)
		if err != nil {
			return Payload{}, err
		}
		p.DayOfWeek = ptr.Of(d)
	case RuleTypeException:
		parsed, err := time.Parse(DateLayout, strings.TrimSpace(date))
		if err != nil {
			return Payload{}, ErrInvalidDate
		}
		p.SpecificDate = ptr.Of(parsed.Format(DateLayout))
	default:
		return Payload{}, ErrInvalidRuleType
	}

	return p, nil
}

func parseClock(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidTime
}

// Without returns rules minus the one with the given id, preserving order.
func Without(rules []Rule, id uuid.UUID) []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}
