package categorizer

import (
	"context"
	"sync"

	"fjacquet/ngtax/internal/models"
)

// MockAIClient is an AIClient for tests and offline runs. Responses are keyed
// by transaction id; Default is returned for unknown ids.
type MockAIClient struct {
	Responses map[string]models.TaxCategory
	Default   models.TaxCategory
	Err       error

	mu    sync.Mutex
	calls []string
}

// SuggestCategory returns the configured response.
func (m *MockAIClient) SuggestCategory(ctx context.Context, tx models.Transaction, allowed []models.TaxCategory) (models.TaxCategory, error) {
	m.mu.Lock()
	m.calls = append(m.calls, tx.ID)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.Err != nil {
		return "", m.Err
	}
	if c, ok := m.Responses[tx.ID]; ok {
		return c, nil
	}
	return m.Default, nil
}

// Calls returns the transaction ids the client was asked about.
func (m *MockAIClient) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
