package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VATReturn is the computed VAT position of one period.
// NetVATPayable is not clamped; a negative value is an input-VAT excess.
type VATReturn struct {
	ID             string          `json:"id" yaml:"id"`
	Period         TaxPeriodInfo   `json:"period" yaml:"period"`
	TotalSales     decimal.Decimal `json:"totalSales" yaml:"total_sales"`
	VATRate        decimal.Decimal `json:"vatRate" yaml:"vat_rate"`
	VATCollected   decimal.Decimal `json:"vatCollected" yaml:"vat_collected"`
	VATDeductible  decimal.Decimal `json:"vatDeductible" yaml:"vat_deductible"`
	NetVATPayable  decimal.Decimal `json:"netVATPayable" yaml:"net_vat_payable"`
	FilingDate     *time.Time      `json:"filingDate,omitempty" yaml:"filing_date,omitempty"`
	DueDate        time.Time       `json:"dueDate" yaml:"due_date"`
	Status         FilingStatus    `json:"status" yaml:"status"`
	TransactionIDs []string        `json:"transactionIds" yaml:"transaction_ids"`
	ReceiptIDs     []string        `json:"receiptIds" yaml:"receipt_ids"`
}

// MonthlyTaxSummary aggregates one period. It is fully derived from the
// transaction snapshot it was computed from.
type MonthlyTaxSummary struct {
	Period                TaxPeriodInfo   `json:"period" yaml:"period"`
	TotalIncome           decimal.Decimal `json:"totalIncome" yaml:"total_income"`
	TotalExpenses         decimal.Decimal `json:"totalExpenses" yaml:"total_expenses"`
	NetIncome             decimal.Decimal `json:"netIncome" yaml:"net_income"`
	VATReturn             VATReturn       `json:"vatReturn" yaml:"vat_return"`
	EstimatedTaxLiability decimal.Decimal `json:"estimatedTaxLiability" yaml:"estimated_tax_liability"`
	TransactionCount      int             `json:"transactionCount" yaml:"transaction_count"`
	ReceiptCount          int             `json:"receiptCount" yaml:"receipt_count"`
	MissingReceipts       int             `json:"missingReceipts" yaml:"missing_receipts"`
}
