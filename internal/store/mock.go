package store

import (
	"fjacquet/ngtax/internal/models"
)

// MockRuleStore is an in-memory rule source for tests.
type MockRuleStore struct {
	CategoryRules []models.CategoryRule

	// Error flag for testing error conditions
	RulesError error
}

// Rules returns a copy of the mock rules.
func (m *MockRuleStore) Rules() ([]models.CategoryRule, error) {
	if m.RulesError != nil {
		return nil, m.RulesError
	}
	// Return a copy to avoid external modifications
	result := make([]models.CategoryRule, len(m.CategoryRules))
	copy(result, m.CategoryRules)
	return result, nil
}
