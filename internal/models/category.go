package models

import (
	"strings"

	"fjacquet/ngtax/internal/taxerror"
)

// TaxCategory tags a transaction for tax treatment.
type TaxCategory string

var categoryLabels = map[TaxCategory]string{
	CategoryTaxableIncome:     "Taxable Income",
	CategoryVATSale:           "VAT Sale",
	CategoryDeductibleExpense: "Deductible Expense",
	CategoryNonTaxable:        "Non-Taxable",
}

// TaxCategories lists the known categories in display order.
func TaxCategories() []TaxCategory {
	return []TaxCategory{
		CategoryTaxableIncome,
		CategoryVATSale,
		CategoryDeductibleExpense,
		CategoryNonTaxable,
	}
}

// Valid reports whether c is one of the known categories.
func (c TaxCategory) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the human readable name of the category.
func (c TaxCategory) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Ptr returns a pointer to a copy of c, for use in Transaction literals.
func (c TaxCategory) Ptr() *TaxCategory {
	return &c
}

// ParseTaxCategory parses a category tag. The empty string yields (nil, nil),
// meaning the transaction is uncategorized.
func ParseTaxCategory(value string) (*TaxCategory, error) {
	clean := strings.ToLower(strings.TrimSpace(value))
	if clean == "" {
		return nil, nil
	}
	c := TaxCategory(clean)
	if !c.Valid() {
		return nil, taxerror.NewInvalidInput("tax_category", value, "unknown tax category")
	}
	return &c, nil
}

// FilingStatus is the lifecycle state of a periodic return.
type FilingStatus string

var statusLabels = map[FilingStatus]string{
	StatusPending: "Pending",
	StatusDraft:   "Draft",
	StatusFiled:   "Filed",
	StatusLate:    "Filed Late",
	StatusOverdue: "Overdue",
}

// Valid reports whether s is a known status.
func (s FilingStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the human readable status.
func (s FilingStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// ParseFilingStatus parses a status tag.
func ParseFilingStatus(value string) (FilingStatus, error) {
	s := FilingStatus(strings.ToLower(strings.TrimSpace(value)))
	if !s.Valid() {
		return "", taxerror.NewInvalidInput("status", value, "unknown filing status")
	}
	return s, nil
}

// BusinessType classifies the registration state of a business.
type BusinessType string

// Valid reports whether b is a known business type.
func (b BusinessType) Valid() bool {
	switch b {
	case BusinessRegistered, BusinessUnregistered, BusinessSmallBusiness:
		return true
	}
	return false
}
