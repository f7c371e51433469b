// Package categorizer suggests tax categories for untagged transactions.
// Strategies run in order: counterparty history, keyword rules, then AI.
package categorizer

import (
	"context"
	"fmt"

	"fjacquet/ngtax/internal/logging"
	"fjacquet/ngtax/internal/models"
	"fjacquet/ngtax/internal/taxerror"
)

// Options controls a categorization run.
type Options struct {
	CaseSensitive     bool // Keyword matching is case sensitive
	OverwriteExisting bool // Re-categorize transactions that already carry a tag
}

// Suggestion is a category proposed for one transaction.
type Suggestion struct {
	TransactionID string             `json:"transactionId" yaml:"transaction_id" csv:"transaction_id"`
	Category      models.TaxCategory `json:"category" yaml:"category" csv:"category"`
	Strategy      string             `json:"strategy" yaml:"strategy" csv:"strategy"`
}

// Result is the outcome of CategorizeAll.
type Result struct {
	Transactions []models.Transaction        `json:"transactions" yaml:"transactions"`
	Suggestions  []Suggestion                `json:"suggestions" yaml:"suggestions"`
	Stats        *models.CategorizationStats `json:"stats" yaml:"stats"`
}

// Categorizer runs its strategies in priority order.
type Categorizer struct {
	strategies   []CategorizationStrategy
	counterparty *CounterpartyStrategy
	options      Options
	logger       logging.Logger
}

// NewCategorizer builds a Categorizer with the counterparty, keyword and AI
// strategies. rules and ai may be nil.
func NewCategorizer(rules RuleSource, ai AIClient, opts Options, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	counterparty := NewCounterpartyStrategy(logger)
	strategies := []CategorizationStrategy{
		counterparty,
		NewKeywordStrategy(rules, opts.CaseSensitive, logger),
	}
	if ai != nil {
		strategies = append(strategies, NewAIStrategy(ai, logger))
	}

	return &Categorizer{
		strategies:   strategies,
		counterparty: counterparty,
		options:      opts,
		logger:       logger,
	}
}

// Strategies returns the names of the configured strategies in order.
func (c *Categorizer) Strategies() []string {
	names := make([]string, 0, len(c.strategies))
	for _, s := range c.strategies {
		names = append(names, s.Name())
	}
	return names
}

// Learn seeds the counterparty strategy from tagged transactions.
func (c *Categorizer) Learn(txs []models.Transaction) {
	c.counterparty.Learn(txs)
}

// Suggest runs the strategies until one finds a category. Strategy errors are
// collected and do not stop the chain.
func (c *Categorizer) Suggest(ctx context.Context, tx models.Transaction) StrategyResults {
	var results StrategyResults
	for _, strategy := range c.strategies {
		if ctx.Err() != nil {
			results.Results = append(results.Results, StrategyResult{Strategy: strategy.Name(), Error: ctx.Err()})
			break
		}

		category, found, err := strategy.Categorize(ctx, tx)
		if err != nil {
			err = &taxerror.CategorizationError{Transaction: tx.ID, Strategy: strategy.Name(), Err: err}
		}
		results.Results = append(results.Results, StrategyResult{
			Strategy: strategy.Name(),
			Category: category,
			Found:    found && err == nil,
			Error:    err,
		})
		if found && err == nil {
			break
		}
	}
	return results
}

// CategorizeAll suggests categories for every untagged transaction. The input
// slice is not modified; the returned transactions are copies with
// suggestions applied. Cancelling ctx aborts the run.
func (c *Categorizer) CategorizeAll(ctx context.Context, txs []models.Transaction) (Result, error) {
	stats := models.NewCategorizationStats()
	out := make([]models.Transaction, 0, len(txs))
	suggestions := []Suggestion{}

	if !c.options.OverwriteExisting {
		c.Learn(txs)
	}

	for _, tx := range txs {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("categorization cancelled: %w", err)
		}
		stats.Total++

		if tx.IsCategorized() && !c.options.OverwriteExisting {
			stats.AlreadyTagged++
			out = append(out, tx)
			continue
		}

		results := c.Suggest(ctx, tx)
		if errs := results.Errors(); len(errs) > 0 {
			stats.Failed++
			for _, err := range errs {
				c.logger.WithError(err).Warn("Categorization strategy failed",
					logging.F(logging.FieldTransactionID, tx.ID))
			}
		}

		best, ok := results.Best()
		if !ok {
			if tx.IsCategorized() {
				stats.AlreadyTagged++
			} else {
				stats.Uncategorized++
			}
			out = append(out, tx)
			continue
		}

		stats.RecordSuggestion(best.Strategy)
		suggestions = append(suggestions, Suggestion{
			TransactionID: tx.ID,
			Category:      best.Category,
			Strategy:      best.Strategy,
		})
		out = append(out, tx.WithCategory(best.Category))
	}

	stats.LogSummary(c.logger)
	return Result{Transactions: out, Suggestions: suggestions, Stats: stats}, nil
}
