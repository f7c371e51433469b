package taxcalc

import (
	"fjacquet/ngtax/internal/models"
)

// CategorizedTransactions partitions transactions by tax category. Every
// input transaction lands in exactly one bucket.
type CategorizedTransactions struct {
	TaxableIncome     []models.Transaction `json:"taxable_income" yaml:"taxable_income"`
	VATSale           []models.Transaction `json:"vat_sale" yaml:"vat_sale"`
	DeductibleExpense []models.Transaction `json:"deductible_expense" yaml:"deductible_expense"`
	NonTaxable        []models.Transaction `json:"non_taxable" yaml:"non_taxable"`
	Uncategorized     []models.Transaction `json:"uncategorized" yaml:"uncategorized"`
}

// Categorize buckets txs by their tax category alone. Transactions without a
// category, or with a tag outside the known set, go to Uncategorized.
func Categorize(txs []models.Transaction) CategorizedTransactions {
	result := CategorizedTransactions{
		TaxableIncome:     []models.Transaction{},
		VATSale:           []models.Transaction{},
		DeductibleExpense: []models.Transaction{},
		NonTaxable:        []models.Transaction{},
		Uncategorized:     []models.Transaction{},
	}
	for _, tx := range txs {
		category, ok := tx.Category()
		if !ok {
			result.Uncategorized = append(result.Uncategorized, tx)
			continue
		}
		switch category {
		case models.CategoryTaxableIncome:
			result.TaxableIncome = append(result.TaxableIncome, tx)
		case models.CategoryVATSale:
			result.VATSale = append(result.VATSale, tx)
		case models.CategoryDeductibleExpense:
			result.DeductibleExpense = append(result.DeductibleExpense, tx)
		case models.CategoryNonTaxable:
			result.NonTaxable = append(result.NonTaxable, tx)
		}
	}
	return result
}

// Bucket returns the transactions of one bucket by name ("uncategorized" or a
// TaxCategory value). Unknown names return nil.
func (c CategorizedTransactions) Bucket(name string) []models.Transaction {
	switch name {
	case string(models.CategoryTaxableIncome):
		return c.TaxableIncome
	case string(models.CategoryVATSale):
		return c.VATSale
	case string(models.CategoryDeductibleExpense):
		return c.DeductibleExpense
	case string(models.CategoryNonTaxable):
		return c.NonTaxable
	case models.CategoryUncategorized:
		return c.Uncategorized
	default:
		return nil
	}
}

// BucketNames lists the buckets in display order.
func BucketNames() []string {
	return []string{
		string(models.CategoryTaxableIncome),
		string(models.CategoryVATSale),
		string(models.CategoryDeductibleExpense),
		string(models.CategoryNonTaxable),
		models.CategoryUncategorized,
	}
}

// Len returns the number of transactions across all buckets.
func (c CategorizedTransactions) Len() int {
	return len(c.TaxableIncome) + len(c.VATSale) + len(c.DeductibleExpense) + len(c.NonTaxable) + len(c.Uncategorized)
}
