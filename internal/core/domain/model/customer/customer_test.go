package customer_test

import (
	"testing"

	"aboshop/internal/core/domain/model/customer"
	"aboshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create customer with all fields", func(t *testing.T) {
		c, err := customer.NewCustomer(validID, "Herr", "Max", "Mustermann", "max@example.com", "+49 711 123456")

		require.NoError(t, err)
		assert.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(validID))
		assert.Equal(t, "Herr", c.Salutation())
		assert.Equal(t, "Max", c.FirstName())
		assert.Equal(t, "Mustermann", c.LastName())
		assert.Equal(t, "max@example.com", c.Email())
		assert.Equal(t, "+49 711 123456", c.Phone())
	})

	t.Run("should allow empty salutation and phone", func(t *testing.T) {
		c, err := customer.NewCustomer(validID, "", "Max", "Mustermann", "max@example.com", "")

		require.NoError(t, err)
		assert.Empty(t, c.Salutation())
		assert.Empty(t, c.Phone())
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.UUID{}, "", "Max", "Mustermann", "max@example.com", "")

		assert.Error(t, err)
	})

	t.Run("should reject missing first name", func(t *testing.T) {
		_, err := customer.NewCustomer(validID, "", "  ", "Mustermann", "max@example.com", "")

		assert.Error(t, err)
	})

	t.Run("should reject missing last name", func(t *testing.T) {
		_, err := customer.NewCustomer(validID, "", "Max", "", "max@example.com", "")

		assert.Error(t, err)
	})

	t.Run("should reject missing email", func(t *testing.T) {
		_, err := customer.NewCustomer(validID, "", "Max", "Mustermann", "", "")

		assert.Error(t, err)
	})

	t.Run("should reject email without at sign", func(t *testing.T) {
		_, err := customer.NewCustomer(validID, "", "Max", "Mustermann", "max.example.com", "")

		assert.Error(t, err)
	})
}

func TestRestoreCustomer(t *testing.T) {
	t.Run("should restore customer with the same invariants", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := customer.RestoreCustomer(id, "Frau", "Erika", "Mustermann", "erika@example.com", "")

		require.NoError(t, err)
		assert.True(t, c.ID().IsEqual(id))
	})
}

func TestCustomer_Validate(t *testing.T) {
	t.Run("should reject customer created without constructor", func(t *testing.T) {
		var c customer.Customer

		assert.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
	})

	t.Run("should reject nil customer", func(t *testing.T) {
		var c *customer.Customer

		assert.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
	})
}

func TestCustomer_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	first, err := customer.NewCustomer(id, "", "Max", "Mustermann", "max@example.com", "")
	require.NoError(t, err)
	same, err := customer.NewCustomer(id, "", "Maximilian", "Mustermann", "other@example.com", "")
	require.NoError(t, err)
	other, err := customer.NewCustomer(kernel.NewUUID(), "", "Max", "Mustermann", "max@example.com", "")
	require.NoError(t, err)

	assert.True(t, first.IsEqual(same))
	assert.False(t, first.IsEqual(other))
	assert.False(t, first.IsEqual(nil))
}
