package request

import (
	"booking-portal/internal/domain/resource"
)

// ResourceForm is the create/edit form. Tags and images are comma separated
// text; capacity only matters for venues.
type ResourceForm struct {
	Name               string `form:"name" json:"name" binding:"required"`
	Description        string `form:"description" json:"description"`
	Type               string `form:"type" json:"type" binding:"required,oneof=SERVICE VENUE"`
	VenueCapacity      int    `form:"capacity" json:"capacity"`
	Address            string `form:"address" json:"address"`
	City               string `form:"city" json:"city"`
	Country            string `form:"country" json:"country"`
	ZipCode            string `form:"zip_code" json:"zip_code"`
	TagList            string `form:"tags" json:"tags"`
	ImageList          string `form:"images" json:"images"`
	CancellationPolicy string `form:"cancellation_policy" json:"cancellation_policy"`
}

func (f ResourceForm) ToDomain() (resource.Payload, error) {
	t, err := resource.NewType(f.Type)
	if err != nil {
		return resource.Payload{}, err
	}
	location := resource.Location{
		Address: f.Address,
		City:    f.City,
		Country: f.Country,
		ZipCode: f.ZipCode,
	}
	return resource.NewPayload(f.Name, f.Description, t, f.VenueCapacity, location, f.TagList, f.ImageList, f.CancellationPolicy)
}
