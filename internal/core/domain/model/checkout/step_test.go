package checkout_test

import (
	"testing"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStep(t *testing.T) {
	t.Run("should parse valid positions", func(t *testing.T) {
		first, err := checkout.ParseStep(1)
		require.NoError(t, err)
		assert.Equal(t, checkout.StepAddress, first)

		last, err := checkout.ParseStep(7)
		require.NoError(t, err)
		assert.Equal(t, checkout.StepConfirmation, last)
	})

	t.Run("should reject positions outside the workflow", func(t *testing.T) {
		_, err := checkout.ParseStep(0)
		assert.Error(t, err)

		_, err = checkout.ParseStep(8)
		assert.Error(t, err)
	})
}

func TestStep_Next(t *testing.T) {
	assert.Equal(t, checkout.StepConfigure, checkout.StepAddress.Next())
	assert.Equal(t, checkout.StepConfirmation, checkout.StepReview.Next())
	assert.Equal(t, checkout.StepConfirmation, checkout.StepConfirmation.Next())
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, "Address", checkout.StepAddress.String())
	assert.Equal(t, "Confirmation", checkout.StepConfirmation.String())
	assert.Equal(t, "Unknown", checkout.Step(42).String())
}

func TestDraft_ResolveEntry(t *testing.T) {
	t.Run("should redirect configurator entry to address without postal code", func(t *testing.T) {
		d := newDraft(t)

		assert.Equal(t, checkout.StepAddress, d.ResolveEntry(checkout.StepConfigure))
	})

	t.Run("should allow configurator entry once postal code is present", func(t *testing.T) {
		d := newDraft(t)
		fillDeliveryAddress(d)

		assert.Equal(t, checkout.StepConfigure, d.ResolveEntry(checkout.StepConfigure))
	})

	t.Run("should redirect identify entry to address without postal code", func(t *testing.T) {
		d := newDraft(t)

		assert.Equal(t, checkout.StepAddress, d.ResolveEntry(checkout.StepIdentify))
	})

	t.Run("should skip identify forward to billing when identity is attached", func(t *testing.T) {
		d := newDraft(t)
		fillDeliveryAddress(d)
		require.NoError(t, d.SetCustomer(newTestCustomer(t)))

		assert.Equal(t, checkout.StepBilling, d.ResolveEntry(checkout.StepIdentify))
	})

	t.Run("should redirect billing entry to identify without identity", func(t *testing.T) {
		d := newDraft(t)
		fillDeliveryAddress(d)

		assert.Equal(t, checkout.StepIdentify, d.ResolveEntry(checkout.StepBilling))
	})

	t.Run("should redirect payment entry to billing without billing address", func(t *testing.T) {
		d := newDraft(t)
		fillDeliveryAddress(d)
		require.NoError(t, d.SetCustomer(newTestCustomer(t)))

		assert.Equal(t, checkout.StepBilling, d.ResolveEntry(checkout.StepPayment))
	})

	t.Run("should resolve payment entry through billing to identify without identity", func(t *testing.T) {
		d := newDraft(t)
		fillDeliveryAddress(d)

		assert.Equal(t, checkout.StepIdentify, d.ResolveEntry(checkout.StepPayment))
	})

	t.Run("should re-evaluate the guard when re-entering the current step", func(t *testing.T) {
		d := newDraft(t)
		fillDeliveryAddress(d)
		require.NoError(t, d.SetCustomer(newTestCustomer(t)))
		d.CopyBillingFromDelivery()
		require.Equal(t, checkout.StepReview, d.EnterStep(checkout.StepReview))
		d.ApplyPayment(checkout.PaymentPatch{Method: ptr(checkout.PaymentUnknown)})

		assert.Equal(t, checkout.StepPayment, d.ResolveEntry(checkout.StepReview))
		assert.Equal(t, checkout.StepPayment, d.EnterStep(checkout.StepReview))
	})

	t.Run("should redirect review entry to payment without a usable method", func(t *testing.T) {
		d := newDraft(t)
		fillDeliveryAddress(d)
		d.ApplyPayment(checkout.PaymentPatch{Method: ptr(checkout.PaymentUnknown)})

		assert.Equal(t, checkout.StepPayment, d.ResolveEntry(checkout.StepReview))
	})

	t.Run("should redirect confirmation entry to address before completion", func(t *testing.T) {
		d := newDraft(t)
		fillDeliveryAddress(d)

		assert.Equal(t, checkout.StepAddress, d.ResolveEntry(checkout.StepConfirmation))
	})

	t.Run("should allow confirmation entry once the order is complete", func(t *testing.T) {
		d := newDraft(t)
		require.NoError(t, d.MarkComplete(kernel.NewUUID()))

		assert.Equal(t, checkout.StepConfirmation, d.ResolveEntry(checkout.StepConfirmation))
	})

	t.Run("should guard confirmation even when navigating backward", func(t *testing.T) {
		d := newDraft(t)
		require.NoError(t, d.MarkComplete(kernel.NewUUID()))
		d.EnterStep(checkout.StepConfirmation)
		d.Reset()

		assert.Equal(t, checkout.StepAddress, d.ResolveEntry(checkout.StepConfirmation))
	})

	t.Run("should allow unrestricted backward navigation", func(t *testing.T) {
		d := newDraft(t)
		fillDeliveryAddress(d)
		require.NoError(t, d.SetCustomer(newTestCustomer(t)))
		d.CopyBillingFromDelivery()
		require.Equal(t, checkout.StepPayment, d.EnterStep(checkout.StepPayment))

		assert.Equal(t, checkout.StepAddress, d.ResolveEntry(checkout.StepAddress))
		assert.Equal(t, checkout.StepConfigure, d.ResolveEntry(checkout.StepConfigure))
	})

	t.Run("should keep current step for invalid targets", func(t *testing.T) {
		d := newDraft(t)
		fillDeliveryAddress(d)
		d.EnterStep(checkout.StepConfigure)

		assert.Equal(t, checkout.StepConfigure, d.ResolveEntry(checkout.Step(42)))
	})
}

func TestDraft_EnterStep(t *testing.T) {
	t.Run("should move the draft to the resolved step", func(t *testing.T) {
		d := newDraft(t)

		resolved := d.EnterStep(checkout.StepConfigure)

		assert.Equal(t, checkout.StepAddress, resolved)
		assert.Equal(t, checkout.StepAddress, d.CurrentStep())
	})

	t.Run("should be idempotent when re-entering the current step", func(t *testing.T) {
		d := newDraft(t)
		fillDeliveryAddress(d)
		require.NoError(t, d.SetCustomer(newTestCustomer(t)))
		require.Equal(t, checkout.StepBilling, d.EnterStep(checkout.StepBilling))

		resolved := d.EnterStep(checkout.StepBilling)

		assert.Equal(t, checkout.StepBilling, resolved)
		assert.Equal(t, checkout.StepBilling, d.CurrentStep())
	})
}
