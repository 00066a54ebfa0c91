package usecase

import (
	"context"
	"errors"

	"booking-portal/internal/domain/availability"
	"booking-portal/internal/domain/resource"
	reqdto "booking-portal/internal/handler/dto/request"
	"booking-portal/internal/infra/backend"
	"booking-portal/internal/view"

	"github.com/google/uuid"
)

type AvailabilityPage struct {
	Resource view.State[*resource.Resource]  `json:"resource"`
	Rules    view.State[[]availability.Rule] `json:"rules"`
}

type AvailabilityUseCase interface {
	Page(ctx context.Context, resourceID uuid.UUID) (*AvailabilityPage, error)
	AddRule(ctx context.Context, resourceID uuid.UUID, form reqdto.RuleForm) (*AvailabilityPage, error)
	RemoveRule(ctx context.Context, resourceID, ruleID uuid.UUID) (*AvailabilityPage, error)
}

type availabilityUseCaseImpl struct {
	api backend.API
}

func NewAvailabilityUseCase(api backend.API) AvailabilityUseCase {
	return &availabilityUseCaseImpl{api: api}
}

type availabilitySlots struct {
	resource *view.Slot[*resource.Resource]
	rules    *view.Slot[[]availability.Rule]
}

func (s availabilitySlots) page() *AvailabilityPage {
	return &AvailabilityPage{Resource: s.resource.State(), Rules: s.rules.State()}
}

func (a *availabilityUseCaseImpl) load(ctx context.Context, resourceID uuid.UUID) (availabilitySlots, error) {
	slots := availabilitySlots{
		resource: view.NewSlot[*resource.Resource](),
		rules:    view.NewSlot[[]availability.Rule](),
	}
	err := loadPair(ctx,
		slots.resource, func(ctx context.Context) (*resource.Resource, error) {
			res, err := a.api.GetResource(ctx, resourceID)
			if err != nil {
				return nil, err
			}
			return &res, nil
		},
		slots.rules, func(ctx context.Context) ([]availability.Rule, error) {
			return a.api.ListAvailability(ctx, resourceID)
		},
	)
	return slots, err
}

func (a *availabilityUseCaseImpl) Page(ctx context.Context, resourceID uuid.UUID) (*AvailabilityPage, error) {
	slots, err := a.load(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	return slots.page(), nil
}

// AddRule creates the rule and appends the backend's copy to the rules
// loaded before the mutation.
func (a *availabilityUseCaseImpl) AddRule(ctx context.Context, resourceID uuid.UUID, form reqdto.RuleForm) (*AvailabilityPage, error) {
	payload, err := rulePayload(form)
	if err != nil {
		return nil, err
	}

	slots, err := a.load(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	created, err := a.api.CreateAvailability(ctx, resourceID, payload)
	if err != nil {
		return nil, view.RuleFields.Backend(err)
	}
	slots.rules.Update(func(rules []availability.Rule) []availability.Rule {
		return append(rules, created)
	})
	return slots.page(), nil
}

// RemoveRule deletes the rule and drops it from the loaded list by id.
func (a *availabilityUseCaseImpl) RemoveRule(ctx context.Context, resourceID, ruleID uuid.UUID) (*AvailabilityPage, error) {
	slots, err := a.load(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if err := a.api.DeleteAvailability(ctx, resourceID, ruleID); err != nil {
		return nil, err
	}
	slots.rules.Update(func(rules []availability.Rule) []availability.Rule {
		return availability.Without(rules, ruleID)
	})
	return slots.page(), nil
}

func rulePayload(form reqdto.RuleForm) (availability.Payload, error) {
	payload, err := form.ToDomain()
	if err == nil {
		return payload, nil
	}

	switch {
	case errors.Is(err, availability.ErrInvalidRuleType):
		return availability.Payload{}, view.RuleFields.Field("type", "Type must be REGULAR or EXCEPTION.", err)
	case errors.Is(err, availability.ErrInvalidDayOfWeek):
		return availability.Payload{}, view.RuleFields.Field("day_of_week", "Choose a day of the week.", err)
	case errors.Is(err, availability.ErrInvalidDate):
		return availability.Payload{}, view.RuleFields.Field("specific_date", "Enter a date as YYYY-MM-DD.", err)
	case errors.Is(err, availability.ErrInvalidTime):
		return availability.Payload{}, view.RuleFields.Field("start_time", "Enter times as HH:MM.", err)
	case errors.Is(err, availability.ErrInvalidTimeRange):
		return availability.Payload{}, view.RuleFields.Field("end_time", "End time must be after start time.", err)
	default:
		return availability.Payload{}, view.RuleFields.Field("", view.GeneralFormMessage, err)
	}
}
