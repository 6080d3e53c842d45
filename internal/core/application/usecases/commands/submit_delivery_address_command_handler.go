package commands

import (
	"context"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/core/ports"
)

// SubmitDeliveryAddressCommandHandler handles the delivery address step.
// Merges the submitted fields, validates the resulting address, resolves
// the delivery facts for the postal code and advances to the
// configurator on success.
type SubmitDeliveryAddressCommandHandler struct {
	drafts ports.DraftRegistry
	geo    ports.GeoDirectory
}

// NewSubmitDeliveryAddressCommandHandler creates a handler for the
// address step. Requires the draft registry and the geographic
// directory for distance and edition lookups.
func NewSubmitDeliveryAddressCommandHandler(drafts ports.DraftRegistry, geo ports.GeoDirectory) SubmitDeliveryAddressCommandHandler {
	return SubmitDeliveryAddressCommandHandler{
		drafts: drafts,
		geo:    geo,
	}
}

// Handle processes the address step submission.
//
// A validation failure records inline field errors on the draft and
// returns ErrValidationFailed; the entered values stay on the draft for
// correction. A directory failure records a banner error and keeps the
// draft intact for retry. On success the city is autofilled when absent,
// the delivery facts are written and the workflow advances.
func (h *SubmitDeliveryAddressCommandHandler) Handle(ctx context.Context, cmd SubmitDeliveryAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	draft, release, err := h.drafts.Acquire(ctx, cmd.SessionID())
	if err != nil {
		return err
	}
	defer release()

	draft.ClearLastError()
	draft.ApplyDeliveryAddress(cmd.Patch())

	addr := draft.DeliveryAddress()
	if !h.validateAddress(draft, addr) {
		return ErrValidationFailed
	}

	code, err := kernel.NewPostalCode(addr.PostalCode)
	if err != nil {
		return err
	}

	draft.SetLoading(true)
	defer draft.SetLoading(false)

	distance, err := h.geo.ResolveDistance(ctx, code)
	if err != nil {
		draft.SetLastError(err.Error())
		return err
	}

	variants, err := h.geo.ResolveAvailableVariants(ctx, addr.PostalCode)
	if err != nil {
		draft.SetLastError(err.Error())
		return err
	}

	if addr.City == "" {
		city, cityErr := h.geo.ResolvePostalCodeInfo(ctx, addr.PostalCode)
		if cityErr != nil {
			draft.SetLastError(cityErr.Error())
			return cityErr
		}
		draft.ApplyDeliveryAddress(checkout.AddressPatch{City: &city})
	}

	method := checkout.DeliveryMethodForDistance(distance)
	draft.ApplyDeliveryInfo(checkout.DeliveryInfoPatch{
		DistanceKm:        &distance,
		Method:            &method,
		AvailableVariants: variants,
	})

	draft.EnterStep(checkout.StepConfigure)
	return nil
}

// validateAddress records inline errors for incomplete address fields
// and reports whether the address is submittable. City may be empty at
// this point since it can be autofilled from the postal code.
func (h *SubmitDeliveryAddressCommandHandler) validateAddress(draft *checkout.Draft, addr checkout.Address) bool {
	valid := true

	if addr.Street == "" {
		draft.SetFieldError("street", "street is required")
		valid = false
	}
	if addr.HouseNumber == "" {
		draft.SetFieldError("houseNumber", "house number is required")
		valid = false
	}
	if !addr.HasPostalCode() {
		draft.SetFieldError("plz", "enter a valid 5-digit postal code")
		valid = false
	}

	return valid
}
