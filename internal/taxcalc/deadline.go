package taxcalc

import (
	"strconv"
	"time"

	"fjacquet/ngtax/internal/dateutils"
	"fjacquet/ngtax/internal/models"
)

// Deadline is a VAT due date measured against the calculator's clock.
type Deadline struct {
	Period        models.TaxPeriodInfo `json:"period" yaml:"period"`
	DueDate       time.Time            `json:"dueDate" yaml:"due_date"`
	DaysRemaining int                  `json:"daysRemaining" yaml:"days_remaining"`
	Overdue       bool                 `json:"overdue" yaml:"overdue"`
}

// VATDueDate returns midnight on the filing day of the month after the
// period, in the period's location. December periods are due in January of
// the next year.
func (c *Calculator) VATDueDate(period models.TaxPeriodInfo) (time.Time, error) {
	if err := validatePeriod(period); err != nil {
		return time.Time{}, err
	}
	return dateutils.DayOfFollowingMonth(period.Year, time.Month(period.Month), c.rates.VATFilingDay, period.Location()), nil
}

// DaysUntil returns the whole days from now until due, counting a partial
// day as a full one. The result is negative once due has passed.
func (c *Calculator) DaysUntil(due time.Time) int {
	return dateutils.CeilDays(c.clock.Now(), due)
}

// IsOverdue reports whether now is strictly after due.
func (c *Calculator) IsOverdue(due time.Time) bool {
	return c.clock.Now().After(due)
}

// NextDeadline returns the VAT deadline of period.
func (c *Calculator) NextDeadline(period models.TaxPeriodInfo) (Deadline, error) {
	due, err := c.VATDueDate(period)
	if err != nil {
		return Deadline{}, err
	}
	return Deadline{
		Period:        period,
		DueDate:       due,
		DaysRemaining: c.DaysUntil(due),
		Overdue:       c.IsOverdue(due),
	}, nil
}

// Describe renders the deadline the way the dashboard shows it.
func (d Deadline) Describe() string {
	switch {
	case d.Overdue && d.DaysRemaining == 0:
		return "due today, overdue"
	case d.Overdue || d.DaysRemaining < 0:
		return pluralDays(-d.DaysRemaining) + " overdue"
	case d.DaysRemaining == 0:
		return "due today"
	default:
		return pluralDays(d.DaysRemaining) + " remaining"
	}
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return strconv.Itoa(n) + " days"
}
