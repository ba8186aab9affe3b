package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/checkoutkit/pkg/validator"
)

func TestValidCardChecksum(t *testing.T) {
	t.Run("error metadata", func(t *testing.T) {
		rule := validator.ValidCardChecksum("card_number", "1234")
		assert.Equal(t, "card_number", rule.Error.Field)
		assert.Equal(t, validator.KindCardChecksum, rule.Error.Kind)
		assert.Equal(t, "Must be a valid card", rule.Error.Message)
	})

	t.Run("passes for Luhn-valid numbers", func(t *testing.T) {
		valid := []string{
			"4111111111111111",
			"4111 1111 1111 1111",
			"5500-0000-0000-0004",
			"378282246310005",
		}

		for _, number := range valid {
			t.Run(number, func(t *testing.T) {
				assert.True(t, validator.ValidCardChecksum("card_number", number).Check())
			})
		}
	})

	t.Run("fails for malformed or checksum-failing numbers", func(t *testing.T) {
		invalid := []string{
			"",
			"4111111111111112",
			"1234567890123456",
			"4111",
			"41111111111111111111",
			"4111a11111111111",
		}

		for _, number := range invalid {
			name := number
			if name == "" {
				name = "empty"
			}
			t.Run(name, func(t *testing.T) {
				assert.False(t, validator.ValidCardChecksum("card_number", number).Check())
			})
		}
	})
}

func TestAcceptedCardBrand(t *testing.T) {
	t.Run("error metadata", func(t *testing.T) {
		rule := validator.AcceptedCardBrand("card_number", "378282246310005")
		assert.Equal(t, "card_number", rule.Error.Field)
		assert.Equal(t, validator.KindCardBrand, rule.Error.Kind)
		assert.Equal(t, "Must be Visa / Master card type", rule.Error.Message)
	})

	t.Run("passes for visa", func(t *testing.T) {
		assert.True(t, validator.AcceptedCardBrand("card_number", "4111 1111 1111 1111").Check())
	})

	t.Run("passes for mastercard", func(t *testing.T) {
		assert.True(t, validator.AcceptedCardBrand("card_number", "5500000000000004").Check())
		assert.True(t, validator.AcceptedCardBrand("card_number", "2221000000000009").Check())
	})

	t.Run("fails for amex", func(t *testing.T) {
		assert.False(t, validator.AcceptedCardBrand("card_number", "378282246310005").Check())
	})

	t.Run("fails for discover", func(t *testing.T) {
		assert.False(t, validator.AcceptedCardBrand("card_number", "6011111111111117").Check())
	})

	t.Run("fails for empty input", func(t *testing.T) {
		assert.False(t, validator.AcceptedCardBrand("card_number", "").Check())
	})
}

func TestCVVLen(t *testing.T) {
	t.Run("error metadata", func(t *testing.T) {
		rule := validator.CVVLen("cvv", "12", 3)
		assert.Equal(t, "cvv", rule.Error.Field)
		assert.Equal(t, validator.KindLength, rule.Error.Kind)
		assert.Equal(t, "Maximum 3 digits", rule.Error.Message)
	})

	t.Run("passes at exact length", func(t *testing.T) {
		assert.True(t, validator.CVVLen("cvv", "123", 3).Check())
		assert.True(t, validator.CVVLen("cvv", "012", 3).Check())
	})

	t.Run("fails when too short", func(t *testing.T) {
		assert.False(t, validator.CVVLen("cvv", "12", 3).Check())
	})

	t.Run("fails when too long", func(t *testing.T) {
		assert.False(t, validator.CVVLen("cvv", "1234", 3).Check())
	})
}

func TestValidCVC(t *testing.T) {
	t.Run("error metadata", func(t *testing.T) {
		rule := validator.ValidCVC("cvv", "12a")
		assert.Equal(t, "cvv", rule.Error.Field)
		assert.Equal(t, validator.KindCVC, rule.Error.Kind)
		assert.Equal(t, "Must be valid CVV", rule.Error.Message)
	})

	t.Run("passes for digits", func(t *testing.T) {
		assert.True(t, validator.ValidCVC("cvv", "123").Check())
		assert.True(t, validator.ValidCVC("cvv", "012").Check())
	})

	t.Run("fails for non-digits", func(t *testing.T) {
		assert.False(t, validator.ValidCVC("cvv", "12a").Check())
		assert.False(t, validator.ValidCVC("cvv", "1 3").Check())
		assert.False(t, validator.ValidCVC("cvv", "").Check())
	})
}
