package taxcalc

import (
	"strconv"
	"time"

	"fjacquet/ngtax/internal/dateutils"
	"fjacquet/ngtax/internal/models"
	"fjacquet/ngtax/internal/taxerror"
)

// ResolvePeriod returns the monthly period containing t. The year and month
// are read in t's own location and the boundaries are expressed there too.
func ResolvePeriod(t time.Time) (models.TaxPeriodInfo, error) {
	if t.IsZero() {
		return models.TaxPeriodInfo{}, taxerror.NewInvalidInput("date", "", "date is required")
	}
	return models.TaxPeriodInfo{
		Kind:      models.PeriodMonthly,
		Year:      t.Year(),
		Month:     int(t.Month()),
		Quarter:   dateutils.QuarterOf(t.Month()),
		StartDate: dateutils.StartOfMonth(t),
		EndDate:   dateutils.EndOfMonth(t),
	}, nil
}

// PeriodFor resolves the period of (year, month) in loc. A nil loc means UTC.
func PeriodFor(year, month int, loc *time.Location) (models.TaxPeriodInfo, error) {
	if month < 1 || month > 12 {
		return models.TaxPeriodInfo{}, taxerror.NewInvalidInput("month", strconv.Itoa(month), "month must be between 1 and 12")
	}
	if loc == nil {
		loc = time.UTC
	}
	return ResolvePeriod(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc))
}

// PreviousPeriod returns the month before p.
func PreviousPeriod(p models.TaxPeriodInfo) (models.TaxPeriodInfo, error) {
	if err := validatePeriod(p); err != nil {
		return models.TaxPeriodInfo{}, err
	}
	return ResolvePeriod(time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, p.Location()).AddDate(0, -1, 0))
}

// CurrentPeriod returns the period containing the calculator's now.
func (c *Calculator) CurrentPeriod() (models.TaxPeriodInfo, error) {
	return ResolvePeriod(c.clock.Now())
}

func validatePeriod(p models.TaxPeriodInfo) error {
	if p.Month < 1 || p.Month > 12 {
		return taxerror.NewInvalidInput("period.month", strconv.Itoa(p.Month), "month must be between 1 and 12")
	}
	return nil
}
