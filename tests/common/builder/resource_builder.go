//go:build unit || e2e

package builder

import (
	"net/url"
	"strconv"

	"booking-portal/internal/domain/availability"
	"booking-portal/internal/domain/booking"
	"booking-portal/internal/domain/resource"
	reqdto "booking-portal/internal/handler/dto/request"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	ID       uuid.UUID
	Name     string
	Type     resource.Type
	Capacity int
	Tags     []string
	Images   []string
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		ID:       uuid.New(),
		Name:     "Tennis Court",
		Type:     resource.TypeVenue,
		Capacity: 4,
		Tags:     []string{"outdoor", "clay"},
		Images:   []string{"https://img.example.com/court.png"},
	}
}

func (r *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(r)
	return r
}

func (r *ResourceBuilder) AsService() *ResourceBuilder {
	r.Type = resource.TypeService
	r.Name = "Massage"
	return r
}

// Build methods
func (r *ResourceBuilder) Build() resource.Resource {
	res := resource.Resource{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Name + " description",
		Type:        r.Type,
		Location: &resource.Location{
			Address: "Main St 1",
			City:    "Istanbul",
			Country: "TR",
			ZipCode: "34000",
		},
		Tags:               r.Tags,
		Images:             r.Images,
		CancellationPolicy: "24h",
		IsActive:           true,
	}
	if r.Type == resource.TypeVenue {
		capacity := r.Capacity
		res.Capacity = &capacity
	}
	return res
}

func (r *ResourceBuilder) BuildForm() url.Values {
	return url.Values{
		"name":                {r.Name},
		"description":         {r.Name + " description"},
		"type":                {string(r.Type)},
		"capacity":            {strconv.Itoa(r.Capacity)},
		"address":             {"Main St 1"},
		"city":                {"Istanbul"},
		"country":             {"TR"},
		"zip_code":            {"34000"},
		"tags":                {resource.JoinList(r.Tags)},
		"images":              {resource.JoinList(r.Images)},
		"cancellation_policy": {"24h"},
	}
}

func (r *ResourceBuilder) BuildFormDTO() reqdto.ResourceForm {
	return reqdto.ResourceForm{
		Name:               r.Name,
		Description:        r.Name + " description",
		Type:               string(r.Type),
		VenueCapacity:      r.Capacity,
		Address:            "Main St 1",
		City:               "Istanbul",
		Country:            "TR",
		ZipCode:            "34000",
		TagList:            resource.JoinList(r.Tags),
		ImageList:          resource.JoinList(r.Images),
		CancellationPolicy: "24h",
	}
}

// BuildRegularRule is a Monday 09:00-17:00 rule for the resource.
func (r *ResourceBuilder) BuildRegularRule() availability.Rule {
	day := availability.Monday
	return availability.Rule{
		ID:          uuid.New(),
		ResourceID:  &r.ID,
		Type:        availability.RuleTypeRegular,
		DayOfWeek:   &day,
		StartTime:   "09:00:00",
		EndTime:     "17:00:00",
		IsAvailable: true,
	}
}

// BuildSlots returns hourly slots starting at 09:00 on date.
func (r *ResourceBuilder) BuildSlots(date string, n int) []booking.Slot {
	slots := make([]booking.Slot, 0, n)
	for i := 0; i < n; i++ {
		slots = append(slots, booking.Slot{
			StartTime: date + "T" + clockAt(9+i) + ":00:00",
			EndTime:   date + "T" + clockAt(10+i) + ":00:00",
		})
	}
	return slots
}

func (r *ResourceBuilder) BuildBooking(status booking.Status) booking.Booking {
	res := r.Build()
	price := 40.0
	return booking.Booking{
		ID:         uuid.New(),
		ResourceID: &r.ID,
		Resource:   &res,
		StartTime:  "2025-06-02T09:00:00",
		EndTime:    "2025-06-02T10:00:00",
		TotalPrice: &price,
		Status:     status,
	}
}

func clockAt(hour int) string {
	if hour < 10 {
		return "0" + strconv.Itoa(hour)
	}
	return strconv.Itoa(hour)
}
