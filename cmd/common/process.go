// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"time"

	"fjacquet/ngtax/internal/container"
	"fjacquet/ngtax/internal/dateutils"
	"fjacquet/ngtax/internal/models"
	"fjacquet/ngtax/internal/report"
	"fjacquet/ngtax/internal/seed"
	"fjacquet/ngtax/internal/taxcalc"
)

// RequireContainer returns c, or an error when the root command did not wire one.
func RequireContainer(c *container.Container) (*container.Container, error) {
	if c == nil {
		return nil, fmt.Errorf("application container is not initialized")
	}
	return c, nil
}

// ResolvePeriod returns the period named by value ("YYYY-MM"), or the
// calculator's current period when value is empty. Named periods use the
// location of the calculator's clock.
func ResolvePeriod(calc *taxcalc.Calculator, value string) (models.TaxPeriodInfo, error) {
	if value == "" {
		return calc.CurrentPeriod()
	}
	year, month, err := dateutils.ParseYearMonth(value)
	if err != nil {
		return models.TaxPeriodInfo{}, err
	}
	return taxcalc.PeriodFor(year, int(month), calc.Now().Location())
}

// ResolveDate returns the period enclosing value, a timestamp in any layout
// the transactions CSV accepts.
func ResolveDate(value string) (models.TaxPeriodInfo, error) {
	t, err := dateutils.ParseTimestamp(value)
	if err != nil {
		return models.TaxPeriodInfo{}, err
	}
	return taxcalc.ResolvePeriod(t)
}

// LoadSnapshot reads the snapshot from the container's provider.
func LoadSnapshot(c *container.Container) (seed.Snapshot, error) {
	snap, err := c.GetProvider().Snapshot()
	if err != nil {
		return seed.Snapshot{}, fmt.Errorf("error loading data: %w (run 'ngtax seed' or use --demo)", err)
	}
	return snap, nil
}

// Render writes value to output in format. An empty format falls back to
// report.format from the configuration.
func Render(c *container.Container, output, format string, value interface{}) error {
	if format == "" {
		format = c.GetConfig().Report.Format
	}
	f, err := report.ParseFormat(format)
	if err != nil {
		return err
	}
	return c.GetReportGenerator().WriteFile(output, value, f)
}

// Elapsed returns a rounded duration for log fields.
func Elapsed(start time.Time) string {
	return time.Since(start).Round(time.Millisecond).String()
}
