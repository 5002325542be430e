package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ShahJahanApurbo/decoration-store/internal/pricing"
)

func TestFormatPrice_Success(t *testing.T) {
	formatted, err := pricing.FormatPrice("80.00", "USD")

	assert.NoError(t, err)
	assert.Contains(t, formatted, "80.00")
}

func TestFormatPrice_MalformedAmount(t *testing.T) {
	_, err := pricing.FormatPrice("not-a-number", "USD")
	assert.Error(t, err)

	_, err = pricing.FormatPrice("", "USD")
	assert.Error(t, err)
}

func TestFormatPrice_UnknownCurrency(t *testing.T) {
	_, err := pricing.FormatPrice("80.00", "NOPE")
	assert.Error(t, err)
}

func TestIsOnSale_CompareAtHigher(t *testing.T) {
	assert.True(t, pricing.IsOnSale("99.99", "100.00"))
}

func TestIsOnSale_EqualPricesIsNotASale(t *testing.T) {
	assert.False(t, pricing.IsOnSale("100.00", "100.00"))
}

func TestIsOnSale_NoCompareAt(t *testing.T) {
	assert.False(t, pricing.IsOnSale("100.00", ""))
}

func TestIsOnSale_CompareAtLower(t *testing.T) {
	assert.False(t, pricing.IsOnSale("100.00", "80.00"))
}

func TestIsOnSale_MalformedAmounts(t *testing.T) {
	assert.False(t, pricing.IsOnSale("abc", "100.00"))
	assert.False(t, pricing.IsOnSale("100.00", "abc"))
}

func TestDiscountPercentage(t *testing.T) {
	assert.Equal(t, 20, pricing.DiscountPercentage("80.00", "100.00"))
}

func TestDiscountPercentage_NoSale(t *testing.T) {
	// Price above compare-at is not a sale; clamp to 0.
	assert.Equal(t, 0, pricing.DiscountPercentage("100.00", "80.00"))
	assert.Equal(t, 0, pricing.DiscountPercentage("100.00", "100.00"))
	assert.Equal(t, 0, pricing.DiscountPercentage("100.00", ""))
}

func TestDiscountPercentage_Rounds(t *testing.T) {
	// (100 - 66.67) / 100 = 33.33% -> 33
	assert.Equal(t, 33, pricing.DiscountPercentage("66.67", "100.00"))
	// (30 - 19.99) / 30 = 33.366...% -> 33
	assert.Equal(t, 33, pricing.DiscountPercentage("19.99", "30.00"))
}

func TestDiscountPercentage_DecimalSafe(t *testing.T) {
	// Amounts that lose precision as binary floats still divide cleanly.
	assert.Equal(t, 10, pricing.DiscountPercentage("0.90", "1.00"))
}
