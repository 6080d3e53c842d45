package guard_test

import (
	"errors"
	"testing"

	"aboshop/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, g)

		// Custom error
		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))

		// Nil error falls back to the default
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := g.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard enforces
// constructor usage in a value object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Price struct {
		amount   float64
		currency string
		guard    guard.ConstructorGuard
	}

	var errPriceNotConstructed = errors.New("Price must be created via NewPrice")

	newPrice := func(amount float64, currency string) (Price, error) {
		if amount < 0 {
			return Price{}, errors.New("amount cannot be negative")
		}
		if currency == "" {
			return Price{}, errors.New("currency is required")
		}
		return Price{
			amount:   amount,
			currency: currency,
			guard:    guard.NewConstructorGuard(),
		}, nil
	}

	validatePrice := func(p Price) error {
		return p.guard.Validate(errPriceNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		price, err := newPrice(29.99, "EUR")

		// Then
		require.NoError(t, err)
		require.NoError(t, validatePrice(price))
		assert.InDelta(t, 29.99, price.amount, 0.001)
		assert.Equal(t, "EUR", price.currency)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var price Price // zero value

		// When
		err := validatePrice(price)

		// Then
		require.Error(t, err)
		assert.Equal(t, errPriceNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newPrice(-1, "EUR")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount cannot be negative")

		_, err = newPrice(29.99, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "currency is required")
	})
}

// TestConstructorGuardEmbeddedExample shows the guard behind an embedded base
// type shared by several entities.
func TestConstructorGuardEmbeddedExample(t *testing.T) {
	var errVariantNotConstructed = errors.New("Variant must be created via NewVariant")

	type guardedEntity struct {
		guard guard.ConstructorGuard
	}

	newGuardedEntity := func() guardedEntity {
		return guardedEntity{
			guard: guard.NewConstructorGuard(),
		}
	}

	validateEntity := func(e guardedEntity) error {
		return e.guard.Validate(errVariantNotConstructed)
	}

	type Variant struct {
		guardedEntity
		id    int
		label string
	}

	newVariant := func(id int, label string) (Variant, error) {
		if id <= 0 {
			return Variant{}, errors.New("variant id must be positive")
		}
		if label == "" {
			return Variant{}, errors.New("variant label is required")
		}
		return Variant{
			guardedEntity: newGuardedEntity(),
			id:            id,
			label:         label,
		}, nil
	}

	t.Run("valid_variant_construction", func(t *testing.T) {
		// When
		variant, err := newVariant(2, "Stadtausgabe Plus")

		// Then
		require.NoError(t, err)
		require.NoError(t, validateEntity(variant.guardedEntity))
		assert.Equal(t, 2, variant.id)
		assert.Equal(t, "Stadtausgabe Plus", variant.label)
	})

	t.Run("zero_value_variant_fails_validation", func(t *testing.T) {
		// Given
		var variant Variant // zero value

		// When
		err := validateEntity(variant.guardedEntity)

		// Then
		require.Error(t, err)
		assert.Equal(t, errVariantNotConstructed, err)
	})
}

func TestConstructorGuardWithMultipleErrors(t *testing.T) {
	testCases := []struct {
		name          string
		expectedError error
	}{
		{
			name:          "draft_not_constructed_error",
			expectedError: errors.New("Draft must be created via NewDraft"),
		},
		{
			name:          "customer_not_constructed_error",
			expectedError: errors.New("Customer must be created via NewCustomer"),
		},
		{
			name:          "postal_code_not_constructed_error",
			expectedError: errors.New("PostalCode must be created via NewPostalCode"),
		},
		{
			name:          "nil_error_uses_default",
			expectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			g := guard.NewConstructorGuard()

			// When
			err := g.Validate(tc.expectedError)

			// Then
			require.NoError(t, err, "Properly constructed guard should not return error")
		})
	}
}

func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("nil_error_uses_default_for_zero_value", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		// Then
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Contains(t, guard.ErrDefaultConstructorGuard.Error(), "constructor")
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardConcurrency verifies that a constructed guard can be
// validated from many goroutines at once.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := g.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	for range 100 {
		<-done
	}
}

func TestConstructorGuardCopies(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		testError := errors.New("test error")

		// When
		guardCopy := g

		// Then
		require.NoError(t, g.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
