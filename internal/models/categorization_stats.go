package models

import (
	"fjacquet/ngtax/internal/logging"
)

// CategorizationStats tracks the outcome of a tax-category suggestion run.
type CategorizationStats struct {
	Total         int            // Transactions examined
	AlreadyTagged int            // Transactions that already carried a category
	Suggested     int            // Transactions that received a suggestion
	Failed        int            // Transactions where a strategy returned an error
	Uncategorized int            // Transactions left without a category
	ByStrategy    map[string]int // Suggestions per strategy name
}

// NewCategorizationStats creates an empty CategorizationStats.
func NewCategorizationStats() *CategorizationStats {
	return &CategorizationStats{ByStrategy: make(map[string]int)}
}

// RecordSuggestion counts a suggestion made by the named strategy.
func (cs *CategorizationStats) RecordSuggestion(strategy string) {
	cs.Suggested++
	if cs.ByStrategy == nil {
		cs.ByStrategy = make(map[string]int)
	}
	cs.ByStrategy[strategy]++
}

// CoverageRate is the share of examined transactions that end up tagged, in percent.
func (cs CategorizationStats) CoverageRate() float64 {
	if cs.Total == 0 {
		return 0.0
	}
	return float64(cs.AlreadyTagged+cs.Suggested) / float64(cs.Total) * 100.0
}

// LogSummary logs a summary of the run.
func (cs CategorizationStats) LogSummary(logger logging.Logger) {
	if logger == nil {
		return
	}

	logger.Info("Categorization summary",
		logging.Field{Key: logging.FieldCount, Value: cs.Total},
		logging.Field{Key: "already_tagged", Value: cs.AlreadyTagged},
		logging.Field{Key: "suggested", Value: cs.Suggested},
		logging.Field{Key: "failed", Value: cs.Failed},
		logging.Field{Key: "uncategorized", Value: cs.Uncategorized},
		logging.Field{Key: "coverage_rate", Value: cs.CoverageRate()},
	)
}
