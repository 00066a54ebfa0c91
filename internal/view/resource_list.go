package view

import (
	"net/http"

	"booking-portal/internal/domain/resource"
)

// Capabilities decides which actions the shared resource list offers.
type Capabilities struct {
	CanEdit           bool `json:"can_edit"`
	CanDelete         bool `json:"can_delete"`
	ShowBookingAction bool `json:"show_booking_action"`
}

var (
	OwnerCapabilities  = Capabilities{CanEdit: true, CanDelete: true}
	PublicCapabilities = Capabilities{ShowBookingAction: true}
)

type Action struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Href   string `json:"href"`
}

type ResourceCard struct {
	ID          string             `json:"resource_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Type        resource.Type      `json:"type"`
	Capacity    *int               `json:"capacity,omitempty"`
	Location    *resource.Location `json:"location,omitempty"`
	Tags        []string           `json:"tags"`
	CoverImage  string             `json:"cover_image,omitempty"`
	IsActive    bool               `json:"is_active"`
	Actions     []Action           `json:"actions"`
}

type ResourceList struct {
	Heading      string         `json:"heading"`
	Capabilities Capabilities   `json:"capabilities"`
	Items        []ResourceCard `json:"items"`
	Empty        bool           `json:"empty"`
}

// NewResourceList renders resources with the actions caps allows.
func NewResourceList(heading string, resources []resource.Resource, caps Capabilities) ResourceList {
	items := make([]ResourceCard, 0, len(resources))
	for _, r := range resources {
		items = append(items, newResourceCard(r, caps))
	}
	return ResourceList{
		Heading:      heading,
		Capabilities: caps,
		Items:        items,
		Empty:        len(items) == 0,
	}
}

func newResourceCard(r resource.Resource, caps Capabilities) ResourceCard {
	id := r.ID.String()
	card := ResourceCard{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Type:        r.Type,
		Location:    r.Location,
		Tags:        r.Tags,
		CoverImage:  r.CoverImage(),
		IsActive:    r.IsActive,
		Actions:     []Action{},
	}
	if capacity, ok := r.VenueCapacity(); ok {
		card.Capacity = &capacity
	}
	if card.Tags == nil {
		card.Tags = []string{}
	}

	if caps.ShowBookingAction {
		card.Actions = append(card.Actions, Action{Label: "Book", Method: http.MethodGet, Href: "/resources/" + id})
	}
	if caps.CanEdit {
		card.Actions = append(card.Actions,
			Action{Label: "Edit", Method: http.MethodGet, Href: "/dashboard/resources/edit/" + id},
			Action{Label: "Availability", Method: http.MethodGet, Href: "/dashboard/resources/availability/" + id},
		)
	}
	if caps.CanDelete {
		card.Actions = append(card.Actions, Action{Label: "Delete", Method: http.MethodPost, Href: "/dashboard/resources/delete/" + id})
	}
	return card
}
