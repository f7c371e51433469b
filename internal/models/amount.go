package models

import (
	"math"
	"strconv"
	"strings"

	"fjacquet/ngtax/internal/taxerror"

	"github.com/shopspring/decimal"
)

// NewAmountFromFloat converts a float64 into a decimal amount.
// NaN and infinities are rejected with an InvalidInputError.
func NewAmountFromFloat(value float64) (decimal.Decimal, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Zero, taxerror.NewInvalidInput("amount", strconv.FormatFloat(value, 'g', -1, 64), "amount must be a finite number")
	}
	return decimal.NewFromFloat(value), nil
}

// ParseAmount parses a decimal amount, tolerating a leading naira sign,
// thousands separators and surrounding spaces. Anything else, including
// "NaN" and "Inf", is an InvalidInputError.
func ParseAmount(value string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(value)
	clean = strings.ReplaceAll(clean, "₦", "")
	clean = strings.ReplaceAll(clean, "NGN", "")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.ReplaceAll(clean, "_", "")
	clean = strings.ReplaceAll(clean, " ", "")

	if clean == "" {
		return decimal.Zero, taxerror.NewInvalidInput("amount", value, "amount is empty")
	}

	dec, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, taxerror.WrapInvalidInput("amount", value, "amount is not a decimal number", err)
	}
	return dec, nil
}

// SumAbs returns the sum of the absolute values of amounts.
func SumAbs(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.Abs())
	}
	return total
}
