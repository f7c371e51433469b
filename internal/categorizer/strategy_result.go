package categorizer

import (
	"fmt"
	"strings"

	"fjacquet/ngtax/internal/models"
)

// StrategyResult represents the result of a categorization strategy attempt
type StrategyResult struct {
	Strategy string
	Category models.TaxCategory
	Found    bool
	Error    error
}

// StrategyResults aggregates results from multiple strategies, in the order
// the strategies ran.
type StrategyResults struct {
	Results []StrategyResult
}

// Best returns the first successful result.
func (sr StrategyResults) Best() (StrategyResult, bool) {
	for _, result := range sr.Results {
		if result.Found && result.Error == nil {
			return result, true
		}
	}
	return StrategyResult{}, false
}

// Errors returns all errors encountered during strategy execution
func (sr StrategyResults) Errors() []error {
	var errs []error
	for _, result := range sr.Results {
		if result.Error != nil {
			errs = append(errs, fmt.Errorf("%s strategy: %w", result.Strategy, result.Error))
		}
	}
	return errs
}

// Summary returns a human-readable summary of all strategy attempts
func (sr StrategyResults) Summary() string {
	parts := make([]string, 0, len(sr.Results))
	for _, result := range sr.Results {
		status := "failed"
		if result.Found {
			status = "success"
		} else if result.Error == nil {
			status = "no_match"
		}
		parts = append(parts, fmt.Sprintf("%s:%s", result.Strategy, status))
	}
	return strings.Join(parts, ", ")
}
