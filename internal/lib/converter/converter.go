package converter

import "github.com/shopspring/decimal"

// ConvertAmountFloatToDecimal normalizes a wire amount to money precision.
// Amounts are handled with two decimal places everywhere past this point.
func ConvertAmountFloatToDecimal(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(2)
}

// ConvertAmountDecimalToString renders a money amount for the wire, always
// with two decimal places.
func ConvertAmountDecimalToString(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
