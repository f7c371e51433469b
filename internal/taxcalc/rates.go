// Package taxcalc is the tax engine: period resolution, VAT deadlines,
// transaction filtering and categorization, VAT returns, monthly summaries and
// compliance scoring. Everything here works on caller-supplied snapshots and
// never mutates them; the only ambient input is the Clock.
package taxcalc

import (
	"fmt"
	"time"

	"fjacquet/ngtax/internal/clock"
	"fjacquet/ngtax/internal/logging"

	"github.com/shopspring/decimal"
)

// Rates are the jurisdiction parameters the engine computes with.
type Rates struct {
	VATRate                decimal.Decimal
	VATFilingDay           int
	CompanyIncomeTaxRate   decimal.Decimal
	SmallBusinessThreshold decimal.Decimal
}

// DefaultRates returns the Nigerian defaults: 7.5% VAT filed by the 21st of
// the following month, 30% company income tax, ₦50m small-business threshold.
func DefaultRates() Rates {
	return Rates{
		VATRate:                decimal.RequireFromString("0.075"),
		VATFilingDay:           21,
		CompanyIncomeTaxRate:   decimal.RequireFromString("0.30"),
		SmallBusinessThreshold: decimal.NewFromInt(50_000_000),
	}
}

// Validate checks that the rates are usable.
func (r Rates) Validate() error {
	one := decimal.NewFromInt(1)
	if r.VATRate.IsNegative() || r.VATRate.GreaterThan(one) {
		return fmt.Errorf("VAT rate must be between 0 and 1, got %s", r.VATRate)
	}
	if r.CompanyIncomeTaxRate.IsNegative() || r.CompanyIncomeTaxRate.GreaterThan(one) {
		return fmt.Errorf("company income tax rate must be between 0 and 1, got %s", r.CompanyIncomeTaxRate)
	}
	if r.VATFilingDay < 1 || r.VATFilingDay > 28 {
		return fmt.Errorf("VAT filing day must be between 1 and 28, got %d", r.VATFilingDay)
	}
	if !r.SmallBusinessThreshold.IsPositive() {
		return fmt.Errorf("small business threshold must be positive, got %s", r.SmallBusinessThreshold)
	}
	return nil
}

// Calculator holds the rates, clock and logger shared by the
// clock-dependent operations.
type Calculator struct {
	rates  Rates
	clock  clock.Clock
	logger logging.Logger
}

// NewCalculator creates a Calculator. A nil clock reads the wall clock and a
// nil logger logs at info level to stderr.
func NewCalculator(rates Rates, clk clock.Clock, logger logging.Logger) *Calculator {
	if clk == nil {
		clk = clock.System{}
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Calculator{
		rates:  rates,
		clock:  clk,
		logger: logger,
	}
}

// Rates returns the rates the calculator was built with.
func (c *Calculator) Rates() Rates {
	return c.rates
}

// Now returns the calculator's current time.
func (c *Calculator) Now() time.Time {
	return c.clock.Now()
}

// CalculateVAT returns amount * VAT rate.
func (c *Calculator) CalculateVAT(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(c.rates.VATRate)
}

// IsSmallBusinessExempt reports whether an annual turnover falls below the
// small-business threshold, and so owes no company income tax.
func (c *Calculator) IsSmallBusinessExempt(annualTurnover decimal.Decimal) bool {
	return annualTurnover.LessThan(c.rates.SmallBusinessThreshold)
}
