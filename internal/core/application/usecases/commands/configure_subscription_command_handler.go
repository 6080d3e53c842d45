package commands

import (
	"context"
	"time"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/services"
	"aboshop/internal/core/ports"
)

// ConfigureSubscriptionCommandHandler handles the configurator step.
// Merges the submitted configuration, validates it, recomputes the price
// quote through the pricing engine and advances to identification.
//
// Every configuration change bumps the draft's configuration revision;
// the recomputed quote is applied under that revision so a computation
// superseded by a newer change is discarded instead of overwriting the
// fresher quote.
type ConfigureSubscriptionCommandHandler struct {
	drafts ports.DraftRegistry
	engine services.PricingEngine
	now    func() time.Time
}

// NewConfigureSubscriptionCommandHandler creates a handler for the
// configurator step.
func NewConfigureSubscriptionCommandHandler(drafts ports.DraftRegistry, engine services.PricingEngine) ConfigureSubscriptionCommandHandler {
	return ConfigureSubscriptionCommandHandler{
		drafts: drafts,
		engine: engine,
		now:    time.Now,
	}
}

// Handle processes the configurator submission. A validation failure
// records inline field errors and returns ErrValidationFailed with the
// entered values kept on the draft.
func (h *ConfigureSubscriptionCommandHandler) Handle(ctx context.Context, cmd ConfigureSubscriptionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	draft, release, err := h.drafts.Acquire(ctx, cmd.SessionID())
	if err != nil {
		return err
	}
	defer release()

	draft.ClearLastError()
	revision := draft.ApplyConfiguration(cmd.Patch())

	cfg := draft.Configuration()
	if !h.validateConfiguration(draft, cfg) {
		return ErrValidationFailed
	}

	quote, err := h.engine.CalculatePrice(services.PriceInput{
		PostalCode: draft.DeliveryAddress().PostalCode,
		DistanceKm: draft.DeliveryInfo().DistanceKm,
		VariantID:  cfg.VariantID,
		Cadence:    cfg.Cadence,
		Interval:   cfg.Interval,
	})
	if err != nil {
		draft.SetLastError(err.Error())
		return err
	}

	if draft.ApplyQuote(quote, revision) {
		draft.ApplyDeliveryInfo(checkout.DeliveryInfoPatch{Method: &quote.Method})
	}

	draft.EnterStep(checkout.StepIdentify)
	return nil
}

// validateConfiguration records inline errors for an unsubmittable
// configuration and reports whether it passed.
func (h *ConfigureSubscriptionCommandHandler) validateConfiguration(draft *checkout.Draft, cfg checkout.Configuration) bool {
	valid := true

	if cfg.VariantID <= 0 {
		draft.SetFieldError("variant", "choose an edition")
		valid = false
	} else if _, err := h.engine.VariantByID(cfg.VariantID); err != nil {
		draft.SetFieldError("variant", "unknown edition")
		valid = false
	} else if !h.variantAvailable(draft, cfg.VariantID) {
		draft.SetFieldError("variant", "edition is not available at this address")
		valid = false
	}

	if cfg.StartDate.IsZero() {
		draft.SetFieldError("startDate", "choose a start date")
		valid = false
	} else if cfg.StartDate.Before(checkout.MinStartDate(h.now())) {
		draft.SetFieldError("startDate", "start date must be at least 3 days from today")
		valid = false
	}

	if cfg.Cadence.Validate() != nil {
		draft.SetFieldError("cadence", "choose a delivery cadence")
		valid = false
	}
	if cfg.Interval.Validate() != nil {
		draft.SetFieldError("interval", "choose a billing interval")
		valid = false
	}

	return valid
}

func (h *ConfigureSubscriptionCommandHandler) variantAvailable(draft *checkout.Draft, variantID int) bool {
	for _, v := range draft.DeliveryInfo().AvailableVariants {
		if v.ID == variantID {
			return true
		}
	}
	return false
}
