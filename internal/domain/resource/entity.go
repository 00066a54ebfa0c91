package resource

import (
	"errors"
	"strings"
	"unicode/utf8"

	"booking-portal/internal/pkg/ptr"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 100 characters)")
	ErrInvalidType         = errors.New("resource type must be SERVICE or VENUE")
	ErrInvalidCapacity     = errors.New("venue capacity must be at least 1")
)

const (
	MaxResourceNameLength = 100
)

type Type string

const (
	TypeService Type = "SERVICE"
	TypeVenue   Type = "VENUE"
)

func (t Type) IsValid() bool {
	return t == TypeService || t == TypeVenue
}

func NewType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

type Location struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
	ZipCode string `json:"zip_code"`
}

// Resource is the backend's record of a bookable service or venue.
type Resource struct {
	ID                     uuid.UUID  `json:"resource_id"`
	OwnerID                *uuid.UUID `json:"owner_id,omitempty"`
	Name                   string     `json:"name"`
	Description            string     `json:"description"`
	Type                   Type       `json:"type"`
	Capacity               *int       `json:"capacity"`
	Location               *Location  `json:"location"`
	Tags                   []string   `json:"tags"`
	Images                 []string   `json:"images"`
	CancellationPolicy     string     `json:"cancellation_policy"`
	IsActive               bool       `json:"is_active"`
	BookingType            string     `json:"booking_type,omitempty"`
	MaxBookingsPerDay      *int       `json:"max_bookings_per_day,omitempty"`
	MaxBookingsPerCustomer *int       `json:"max_bookings_per_customer,omitempty"`
	CreatedAt              string     `json:"created_at,omitempty"`
	UpdatedAt              string     `json:"updated_at,omitempty"`
}

// VenueCapacity reports the capacity only for venues.
func (r Resource) VenueCapacity() (int, bool) {
	if r.Type != TypeVenue || r.Capacity == nil {
		return 0, false
	}
	return *r.Capacity, true
}

// CoverImage is the first image, used as the list thumbnail.
func (r Resource) CoverImage() string {
	if len(r.Images) == 0 {
		return ""
	}
	return r.Images[0]
}

// Payload is the body of POST /resources/ and PUT /resources/{id}.
type Payload struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Type               Type     `json:"type"`
	Capacity           *int     `json:"capacity"`
	Location           Location `json:"location"`
	Tags               []string `json:"tags"`
	Images             []string `json:"images"`
	CancellationPolicy string   `json:"cancellation_policy"`
}

// NewPayload validates the form values. Capacity is kept only for venues;
// tags and images are comma separated lists.
func NewPayload(name, description string, t Type, capacity int, location Location, tags, images, cancellationPolicy string) (Payload, error) {
	if err := validateResourceName(name); err != nil {
		return Payload{}, err
	}
	if !t.IsValid() {
		return Payload{}, ErrInvalidType
	}

	var venueCapacity *int
	if t == TypeVenue {
		if capacity < 1 {
			return Payload{}, ErrInvalidCapacity
		}
		venueCapacity = ptr.Of(capacity)
	}

	return Payload{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Type:        t,
		Capacity:    venueCapacity,
		Location: Location{
			Address: strings.TrimSpace(location.Address),
			City:    strings.TrimSpace(location.City),
			Country: strings.TrimSpace(location.Country),
			ZipCode: strings.TrimSpace(location.ZipCode),
		},
		Tags:               SplitList(tags),
		Images:             SplitList(images),
		CancellationPolicy: strings.TrimSpace(cancellationPolicy),
	}, nil
}

// SplitList turns "a, b , ,c" into ["a","b","c"]. The result is never nil.
func SplitList(raw string) []string {
	items := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// JoinList is the inverse used to prefill edit forms.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if utf8.RuneCountInString(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}
