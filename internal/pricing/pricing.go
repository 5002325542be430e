// Package pricing holds the money helpers shared by the catalog and API
// layers. Amounts arrive as decimal strings from the Storefront API and
// all comparisons run on decimals; floats only appear at the final
// display-formatting step.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatPrice renders a decimal amount string as a locale-correct currency
// string, e.g. ("80.00", "USD") -> "$ 80.00". Malformed amounts and
// unknown currency codes are caller errors and are returned as such, never
// silently coerced to zero.
func FormatPrice(amount, currencyCode string) (string, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return "", fmt.Errorf("malformed amount %q: %w", amount, err)
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return "", fmt.Errorf("unknown currency code %q: %w", currencyCode, err)
	}

	printer := message.NewPrinter(language.AmericanEnglish)
	return printer.Sprintf("%v", currency.Symbol(unit.Amount(d.InexactFloat64()))), nil
}

// IsOnSale reports whether a compare-at price marks a sale: it must be
// present and strictly greater than the current price. Equal prices are
// not a sale. Malformed amounts disable sale display rather than faking a
// discount.
func IsOnSale(price, compareAtPrice string) bool {
	if compareAtPrice == "" {
		return false
	}
	current, err := decimal.NewFromString(price)
	if err != nil {
		return false
	}
	compareAt, err := decimal.NewFromString(compareAtPrice)
	if err != nil {
		return false
	}
	return compareAt.GreaterThan(current)
}

// DiscountPercentage computes round(((compareAt - price) / compareAt) * 100),
// clamped to 0 whenever IsOnSale does not hold.
func DiscountPercentage(price, compareAtPrice string) int {
	if !IsOnSale(price, compareAtPrice) {
		return 0
	}
	current, _ := decimal.NewFromString(price)
	compareAt, _ := decimal.NewFromString(compareAtPrice)

	pct := compareAt.Sub(current).
		Div(compareAt).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	return int(pct.IntPart())
}
