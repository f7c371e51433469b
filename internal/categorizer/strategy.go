package categorizer

import (
	"context"

	"fjacquet/ngtax/internal/models"
)

// CategorizationStrategy defines one way of suggesting a tax category.
type CategorizationStrategy interface {
	// Categorize suggests a category for tx. The boolean reports whether the
	// strategy found one; the category is only meaningful when it is true.
	Categorize(ctx context.Context, tx models.Transaction) (models.TaxCategory, bool, error)

	// Name returns the name of this strategy for logging and statistics.
	Name() string
}

// RuleSource supplies keyword rules. store.FileStore and store.MockRuleStore
// implement it.
type RuleSource interface {
	Rules() ([]models.CategoryRule, error)
}
