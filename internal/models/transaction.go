// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"fjacquet/ngtax/internal/taxerror"

	"github.com/shopspring/decimal"
)

// Transaction is a single ledger entry as supplied by the caller.
// Positive amounts are inflows, negative amounts outflows. TaxCategory and
// ReceiptURL are optional; nil means absent.
type Transaction struct {
	ID           string          `json:"id" yaml:"id"`
	Amount       decimal.Decimal `json:"amount" yaml:"amount"`
	Timestamp    time.Time       `json:"timestamp" yaml:"timestamp"`
	TaxCategory  *TaxCategory    `json:"taxCategory,omitempty" yaml:"tax_category,omitempty"`
	ReceiptURL   *string         `json:"receiptUrl,omitempty" yaml:"receipt_url,omitempty"`
	Description  string          `json:"description,omitempty" yaml:"description,omitempty"`
	Counterparty string          `json:"counterparty,omitempty" yaml:"counterparty,omitempty"`
}

// NewTransaction builds a transaction from a float amount, rejecting
// non-finite values and zero timestamps.
func NewTransaction(id string, amount float64, timestamp time.Time) (Transaction, error) {
	dec, err := NewAmountFromFloat(amount)
	if err != nil {
		return Transaction{}, err
	}
	if timestamp.IsZero() {
		return Transaction{}, taxerror.NewInvalidInput("timestamp", "", "timestamp is required")
	}
	return Transaction{ID: id, Amount: dec, Timestamp: timestamp}, nil
}

// WithCategory returns a copy of t tagged with c.
func (t Transaction) WithCategory(c TaxCategory) Transaction {
	t.TaxCategory = c.Ptr()
	return t
}

// WithReceipt returns a copy of t referencing the given receipt.
func (t Transaction) WithReceipt(url string) Transaction {
	t.ReceiptURL = &url
	return t
}

// Category returns the tax category and whether it is set to a known value.
func (t Transaction) Category() (TaxCategory, bool) {
	if t.TaxCategory == nil || !t.TaxCategory.Valid() {
		return "", false
	}
	return *t.TaxCategory, true
}

// IsCategorized reports whether the transaction carries a known tax category.
func (t Transaction) IsCategorized() bool {
	_, ok := t.Category()
	return ok
}

// HasReceipt reports whether supporting documentation is attached.
func (t Transaction) HasReceipt() bool {
	return t.ReceiptURL != nil && *t.ReceiptURL != ""
}

// IsInflow reports whether the amount is strictly positive.
func (t Transaction) IsInflow() bool {
	return t.Amount.IsPositive()
}

// IsOutflow reports whether the amount is strictly negative.
func (t Transaction) IsOutflow() bool {
	return t.Amount.IsNegative()
}

// Validate checks the fields the engine relies on.
func (t Transaction) Validate() error {
	if t.Timestamp.IsZero() {
		return taxerror.NewInvalidInput("timestamp", "", "timestamp is required for transaction "+t.ID)
	}
	if t.TaxCategory != nil && !t.TaxCategory.Valid() {
		return taxerror.NewInvalidInput("tax_category", string(*t.TaxCategory), "unknown tax category")
	}
	return nil
}

// TransactionIDs returns the ids of txs in order.
func TransactionIDs(txs []Transaction) []string {
	ids := make([]string, 0, len(txs))
	for _, tx := range txs {
		ids = append(ids, tx.ID)
	}
	return ids
}
