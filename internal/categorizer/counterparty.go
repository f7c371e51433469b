package categorizer

import (
	"context"
	"strings"
	"sync"

	"fjacquet/ngtax/internal/logging"
	"fjacquet/ngtax/internal/models"
)

// CounterpartyStrategy reuses the category of earlier transactions with the
// same counterparty. Mappings are learned from already-tagged transactions.
type CounterpartyStrategy struct {
	mappings map[string]models.TaxCategory // lower-cased counterparty -> category
	logger   logging.Logger
	mu       sync.RWMutex
}

// NewCounterpartyStrategy creates an empty CounterpartyStrategy.
func NewCounterpartyStrategy(logger logging.Logger) *CounterpartyStrategy {
	return &CounterpartyStrategy{
		mappings: make(map[string]models.TaxCategory),
		logger:   logger,
	}
}

// Name returns the name of this strategy for logging and statistics.
func (s *CounterpartyStrategy) Name() string {
	return "Counterparty"
}

// Learn records the category of every tagged transaction that names a
// counterparty. Later transactions win.
func (s *CounterpartyStrategy) Learn(txs []models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range txs {
		category, ok := tx.Category()
		key := normalizeParty(tx.Counterparty)
		if !ok || key == "" {
			continue
		}
		s.mappings[key] = category
	}
}

// Add records a single counterparty mapping.
func (s *CounterpartyStrategy) Add(counterparty string, category models.TaxCategory) {
	key := normalizeParty(counterparty)
	if key == "" || !category.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mappings[key] = category
}

// Len returns the number of known counterparties.
func (s *CounterpartyStrategy) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mappings)
}

// Categorize looks up the transaction's counterparty.
func (s *CounterpartyStrategy) Categorize(ctx context.Context, tx models.Transaction) (models.TaxCategory, bool, error) {
	key := normalizeParty(tx.Counterparty)
	if key == "" {
		return "", false, nil
	}

	s.mu.RLock()
	category, found := s.mappings[key]
	s.mu.RUnlock()
	if !found {
		return "", false, nil
	}

	s.logger.Debug("Transaction categorized using counterparty mapping",
		logging.F(logging.FieldStrategy, s.Name()),
		logging.F(logging.FieldTransactionID, tx.ID),
		logging.F(logging.FieldCategory, string(category)))
	return category, true, nil
}

func normalizeParty(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
