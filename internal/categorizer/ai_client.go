package categorizer

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/ngtax/internal/models"
)

// AIClient suggests a tax category for a transaction using a language model.
type AIClient interface {
	SuggestCategory(ctx context.Context, tx models.Transaction, allowed []models.TaxCategory) (models.TaxCategory, error)
}

// buildPrompt renders the instruction sent to the model.
func buildPrompt(tx models.Transaction, allowed []models.TaxCategory) string {
	names := make([]string, 0, len(allowed))
	for _, c := range allowed {
		names = append(names, string(c))
	}

	direction := "inflow"
	if tx.IsOutflow() {
		direction = "outflow"
	}

	var b strings.Builder
	b.WriteString("You classify Nigerian business transactions for VAT and income tax.\n")
	fmt.Fprintf(&b, "Allowed categories: %s.\n", strings.Join(names, ", "))
	b.WriteString("Answer with a single line of the form 'Category: <category>'.\n\n")
	fmt.Fprintf(&b, "Amount: %s NGN (%s)\n", tx.Amount.StringFixed(2), direction)
	if tx.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", tx.Description)
	}
	if tx.Counterparty != "" {
		fmt.Fprintf(&b, "Counterparty: %s\n", tx.Counterparty)
	}
	return b.String()
}

// parseCategory extracts the category from a model answer. It accepts either
// a "Category:" line or a bare category tag.
func parseCategory(answer string, allowed []models.TaxCategory) (models.TaxCategory, bool) {
	candidate := strings.TrimSpace(answer)
	for _, line := range strings.Split(answer, "\n") {
		line = strings.TrimSpace(line)
		if idx := strings.Index(strings.ToLower(line), "category:"); idx >= 0 {
			candidate = strings.TrimSpace(line[idx+len("category:"):])
			break
		}
	}
	candidate = strings.Trim(strings.ToLower(candidate), " .*`'\"")
	candidate = strings.ReplaceAll(candidate, " ", "_")

	for _, c := range allowed {
		if candidate == string(c) {
			return c, true
		}
	}
	return "", false
}
