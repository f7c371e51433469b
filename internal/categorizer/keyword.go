package categorizer

import (
	"context"
	"strings"
	"sync"

	"fjacquet/ngtax/internal/logging"
	"fjacquet/ngtax/internal/models"
)

// DefaultRules returns the built-in keyword rules used when no rules file is
// configured.
func DefaultRules() []models.CategoryRule {
	return []models.CategoryRule{
		{Category: models.CategoryVATSale, Keywords: []string{"invoice", "sale", "sales"}},
		{Category: models.CategoryTaxableIncome, Keywords: []string{"consulting", "service fee", "commission", "interest"}},
		{Category: models.CategoryDeductibleExpense, Keywords: []string{"rent", "office", "fuel", "diesel", "supplies", "internet", "salary"}},
		{Category: models.CategoryNonTaxable, Keywords: []string{"transfer", "loan", "refund", "grant", "owner"}},
	}
}

// KeywordStrategy matches rule keywords against a transaction's description
// and counterparty. The first matching rule wins.
type KeywordStrategy struct {
	source        RuleSource
	caseSensitive bool
	logger        logging.Logger

	once  sync.Once
	rules []models.CategoryRule
	err   error
}

// NewKeywordStrategy creates a KeywordStrategy. A nil source uses DefaultRules.
func NewKeywordStrategy(source RuleSource, caseSensitive bool, logger logging.Logger) *KeywordStrategy {
	return &KeywordStrategy{
		source:        source,
		caseSensitive: caseSensitive,
		logger:        logger,
	}
}

// Name returns the name of this strategy for logging and statistics.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// loadRules reads the rules once. An empty rule set falls back to the defaults.
func (s *KeywordStrategy) loadRules() ([]models.CategoryRule, error) {
	s.once.Do(func() {
		if s.source == nil {
			s.rules = DefaultRules()
			return
		}
		rules, err := s.source.Rules()
		if err != nil {
			s.err = err
			return
		}
		if len(rules) == 0 {
			s.logger.Debug("No keyword rules configured, using built-in rules")
			rules = DefaultRules()
		}
		s.rules = rules
	})
	return s.rules, s.err
}

// Categorize returns the category of the first rule with a keyword found in
// the description or counterparty.
func (s *KeywordStrategy) Categorize(ctx context.Context, tx models.Transaction) (models.TaxCategory, bool, error) {
	rules, err := s.loadRules()
	if err != nil {
		return "", false, err
	}

	text := tx.Description + " " + tx.Counterparty
	if strings.TrimSpace(text) == "" {
		return "", false, nil
	}
	if !s.caseSensitive {
		text = strings.ToLower(text)
	}

	for _, rule := range rules {
		if !rule.Category.Valid() {
			continue
		}
		for _, keyword := range rule.Keywords {
			if keyword == "" {
				continue
			}
			if !s.caseSensitive {
				keyword = strings.ToLower(keyword)
			}
			if strings.Contains(text, keyword) {
				s.logger.Debug("Transaction categorized using keyword rule",
					logging.F(logging.FieldStrategy, s.Name()),
					logging.F(logging.FieldTransactionID, tx.ID),
					logging.F(logging.FieldCategory, string(rule.Category)),
					logging.F("keyword", keyword))
				return rule.Category, true, nil
			}
		}
	}
	return "", false, nil
}
