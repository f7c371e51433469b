package categorizer

import (
	"context"

	"fjacquet/ngtax/internal/logging"
	"fjacquet/ngtax/internal/models"
)

// AIStrategy delegates to an AIClient. It is the last strategy tried.
type AIStrategy struct {
	client AIClient
	logger logging.Logger
}

// NewAIStrategy creates an AIStrategy. A nil client disables the strategy.
func NewAIStrategy(client AIClient, logger logging.Logger) *AIStrategy {
	return &AIStrategy{client: client, logger: logger}
}

// Name returns the name of this strategy for logging and statistics.
func (s *AIStrategy) Name() string {
	return "AI"
}

// Categorize asks the client for a suggestion.
func (s *AIStrategy) Categorize(ctx context.Context, tx models.Transaction) (models.TaxCategory, bool, error) {
	if s.client == nil {
		return "", false, nil
	}

	category, err := s.client.SuggestCategory(ctx, tx, models.TaxCategories())
	if err != nil {
		return "", false, err
	}
	if !category.Valid() {
		return "", false, nil
	}

	s.logger.Debug("Transaction categorized using AI",
		logging.F(logging.FieldStrategy, s.Name()),
		logging.F(logging.FieldTransactionID, tx.ID),
		logging.F(logging.FieldCategory, string(category)))
	return category, true, nil
}
