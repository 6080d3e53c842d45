package kernel_test

import (
	"testing"

	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostalCode(t *testing.T) {
	t.Run("should create valid postal code", func(t *testing.T) {
		code, err := kernel.NewPostalCode("72762")

		require.NoError(t, err)
		require.NoError(t, code.Validate())
		assert.Equal(t, "72762", code.String())
		assert.Equal(t, 7, code.FirstDigit())
	})

	t.Run("should accept leading zero", func(t *testing.T) {
		code, err := kernel.NewPostalCode("01067")

		require.NoError(t, err)
		assert.Equal(t, 0, code.FirstDigit())
	})

	t.Run("should fail with empty value", func(t *testing.T) {
		_, err := kernel.NewPostalCode("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with too few digits", func(t *testing.T) {
		_, err := kernel.NewPostalCode("7276")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with too many digits", func(t *testing.T) {
		_, err := kernel.NewPostalCode("727620")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with non-digit characters", func(t *testing.T) {
		_, err := kernel.NewPostalCode("7276a")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPostalCode_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var code kernel.PostalCode

		err := code.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPostalCodeIsNotConstructed, err)
	})

	t.Run("should pass for constructed code", func(t *testing.T) {
		code, _ := kernel.NewPostalCode("10115")

		require.NoError(t, code.Validate())
	})
}

func TestPostalCode_IsEqual(t *testing.T) {
	a, _ := kernel.NewPostalCode("10115")
	b, _ := kernel.NewPostalCode("10115")
	c, _ := kernel.NewPostalCode("72762")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
