package request

import (
	"booking-portal/internal/domain/availability"
	"booking-portal/internal/pkg/patch"
)

type RuleForm struct {
	Type         string `form:"type" json:"type" binding:"required,oneof=REGULAR EXCEPTION"`
	DayOfWeek    string `form:"day_of_week" json:"day_of_week"`
	SpecificDate string `form:"specific_date" json:"specific_date"`
	StartTime    string `form:"start_time" json:"start_time" binding:"required"`
	EndTime      string `form:"end_time" json:"end_time" binding:"required"`
	IsAvailable  *bool  `form:"is_available" json:"is_available"`
}

// ToDomain defaults is_available to true when the form leaves it out.
func (f RuleForm) ToDomain() (availability.Payload, error) {
	t, err := availability.NewRuleType(f.Type)
	if err != nil {
		return availability.Payload{}, err
	}
	available := patch.Coalesce(f.IsAvailable, true)
	return availability.NewPayload(t, f.DayOfWeek, f.SpecificDate, f.StartTime, f.EndTime, available)
}
