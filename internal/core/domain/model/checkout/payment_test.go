package checkout_test

import (
	"testing"

	"aboshop/internal/core/domain/model/checkout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIBAN(t *testing.T) {
	assert.Equal(t, "DE89370400440532013000", checkout.NormalizeIBAN("de89 3704 0044 0532 0130 00"))
	assert.Equal(t, "DE89370400440532013000", checkout.NormalizeIBAN("DE89370400440532013000"))
	assert.Equal(t, "", checkout.NormalizeIBAN("   "))
}

func TestValidIBAN(t *testing.T) {
	t.Run("should accept structurally valid IBANs in any spacing", func(t *testing.T) {
		assert.True(t, checkout.ValidIBAN("DE89370400440532013000"))
		assert.True(t, checkout.ValidIBAN("de89 3704 0044 0532 0130 00"))
		assert.True(t, checkout.ValidIBAN("GB29NWBK60161331926819"))
	})

	t.Run("should reject malformed IBANs", func(t *testing.T) {
		assert.False(t, checkout.ValidIBAN(""))
		assert.False(t, checkout.ValidIBAN("DE89"))
		assert.False(t, checkout.ValidIBAN("1289370400440532013000"))
		assert.False(t, checkout.ValidIBAN("DEXX370400440532013000"))
	})
}

func TestParsePaymentMethod(t *testing.T) {
	t.Run("should parse wire names", func(t *testing.T) {
		m, err := checkout.ParsePaymentMethod("invoice")
		require.NoError(t, err)
		assert.Equal(t, checkout.PaymentInvoice, m)

		m, err = checkout.ParsePaymentMethod("directDebit")
		require.NoError(t, err)
		assert.Equal(t, checkout.PaymentDirectDebit, m)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := checkout.ParsePaymentMethod("cash")
		assert.Error(t, err)
	})
}

func TestPayment_Validate(t *testing.T) {
	t.Run("should accept invoice without bank details", func(t *testing.T) {
		p := checkout.Payment{Method: checkout.PaymentInvoice}

		assert.NoError(t, p.Validate())
	})

	t.Run("should accept direct debit with holder and valid IBAN", func(t *testing.T) {
		p := checkout.Payment{
			Method:        checkout.PaymentDirectDebit,
			IBAN:          "DE89370400440532013000",
			AccountHolder: "Erika Mustermann",
		}

		assert.NoError(t, p.Validate())
	})

	t.Run("should accept direct debit without BIC", func(t *testing.T) {
		p := checkout.Payment{
			Method:        checkout.PaymentDirectDebit,
			IBAN:          "DE89370400440532013000",
			AccountHolder: "Erika Mustermann",
			BIC:           "",
		}

		assert.NoError(t, p.Validate())
	})

	t.Run("should reject direct debit without account holder", func(t *testing.T) {
		p := checkout.Payment{
			Method: checkout.PaymentDirectDebit,
			IBAN:   "DE89370400440532013000",
		}

		assert.Error(t, p.Validate())
	})

	t.Run("should reject direct debit with malformed IBAN", func(t *testing.T) {
		p := checkout.Payment{
			Method:        checkout.PaymentDirectDebit,
			IBAN:          "DE89",
			AccountHolder: "Erika Mustermann",
		}

		assert.Error(t, p.Validate())
	})

	t.Run("should reject unset method", func(t *testing.T) {
		p := checkout.Payment{}

		assert.Error(t, p.Validate())
	})
}
