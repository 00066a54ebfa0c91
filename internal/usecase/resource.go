package usecase

import (
	"context"
	"errors"

	"booking-portal/internal/domain/resource"
	reqdto "booking-portal/internal/handler/dto/request"
	"booking-portal/internal/infra/backend"
	"booking-portal/internal/pkg/errs"
	"booking-portal/internal/view"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ResourceUseCase interface {
	List(ctx context.Context, heading string, caps view.Capabilities) (*view.ResourceList, error)
	NewForm() *reqdto.ResourceForm
	EditForm(ctx context.Context, id uuid.UUID) (*reqdto.ResourceForm, error)
	Create(ctx context.Context, form reqdto.ResourceForm) (*resource.Resource, error)
	Update(ctx context.Context, id uuid.UUID, form reqdto.ResourceForm) (*resource.Resource, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type resourceUseCaseImpl struct {
	api backend.API
}

func NewResourceUseCase(api backend.API) ResourceUseCase {
	return &resourceUseCaseImpl{api: api}
}

func (r *resourceUseCaseImpl) List(ctx context.Context, heading string, caps view.Capabilities) (*view.ResourceList, error) {
	resources, err := r.api.ListResources(ctx)
	if err != nil {
		return nil, err
	}
	list := view.NewResourceList(heading, resources, caps)
	return &list, nil
}

func (r *resourceUseCaseImpl) NewForm() *reqdto.ResourceForm {
	return &reqdto.ResourceForm{Type: string(resource.TypeService)}
}

// EditForm pre-fills the form from the stored resource.
func (r *resourceUseCaseImpl) EditForm(ctx context.Context, id uuid.UUID) (*reqdto.ResourceForm, error) {
	res, err := r.api.GetResource(ctx, id)
	if err != nil {
		return nil, err
	}

	form := &reqdto.ResourceForm{}
	if err := copier.Copy(form, &res); err != nil {
		return nil, errs.Wrap(err, "prefill resource form")
	}
	if capacity, ok := res.VenueCapacity(); ok {
		form.VenueCapacity = capacity
	}
	if res.Location != nil {
		form.Address = res.Location.Address
		form.City = res.Location.City
		form.Country = res.Location.Country
		form.ZipCode = res.Location.ZipCode
	}
	form.TagList = resource.JoinList(res.Tags)
	form.ImageList = resource.JoinList(res.Images)
	return form, nil
}

func (r *resourceUseCaseImpl) Create(ctx context.Context, form reqdto.ResourceForm) (*resource.Resource, error) {
	payload, err := resourcePayload(form)
	if err != nil {
		return nil, err
	}
	created, err := r.api.CreateResource(ctx, payload)
	if err != nil {
		return nil, view.ResourceFields.Backend(err)
	}
	return &created, nil
}

func (r *resourceUseCaseImpl) Update(ctx context.Context, id uuid.UUID, form reqdto.ResourceForm) (*resource.Resource, error) {
	payload, err := resourcePayload(form)
	if err != nil {
		return nil, err
	}
	updated, err := r.api.UpdateResource(ctx, id, payload)
	if err != nil {
		return nil, view.ResourceFields.Backend(err)
	}
	return &updated, nil
}

func (r *resourceUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.api.DeleteResource(ctx, id)
}

func resourcePayload(form reqdto.ResourceForm) (resource.Payload, error) {
	payload, err := form.ToDomain()
	if err == nil {
		return payload, nil
	}

	switch {
	case errors.Is(err, resource.ErrEmptyResourceName):
		return resource.Payload{}, view.ResourceFields.Field("name", "Name is required.", err)
	case errors.Is(err, resource.ErrResourceNameTooLong):
		return resource.Payload{}, view.ResourceFields.Field("name", "Name must be at most 100 characters.", err)
	case errors.Is(err, resource.ErrInvalidType):
		return resource.Payload{}, view.ResourceFields.Field("type", "Type must be SERVICE or VENUE.", err)
	case errors.Is(err, resource.ErrInvalidCapacity):
		return resource.Payload{}, view.ResourceFields.Field("capacity", "Venues need a capacity of at least 1.", err)
	default:
		return resource.Payload{}, view.ResourceFields.Field("", view.GeneralFormMessage, err)
	}
}
