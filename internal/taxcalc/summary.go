package taxcalc

import (
	"fjacquet/ngtax/internal/logging"
	"fjacquet/ngtax/internal/models"

	"github.com/shopspring/decimal"
)

// ComputeMonthlySummary aggregates the period's income, expenses and VAT.
//
// Income is positive taxable_income plus positive vat_sale; expenses are all
// deductible_expense plus negative vat_sale, both as absolute sums. The VAT
// return is computed from the full txs, not the filtered view. Company income
// tax on NetIncome is added to the liability only when business is non-nil
// and not a small business.
func (c *Calculator) ComputeMonthlySummary(txs []models.Transaction, period models.TaxPeriodInfo, business *models.BusinessTaxInfo) (models.MonthlyTaxSummary, error) {
	vatReturn, err := c.ComputeVATReturn(txs, period)
	if err != nil {
		return models.MonthlyTaxSummary{}, err
	}

	inPeriod := SelectInPeriod(txs, period)
	buckets := Categorize(inPeriod)

	totalIncome := CategoryTotal(inflows(buckets.TaxableIncome)).Add(CategoryTotal(inflows(buckets.VATSale)))
	totalExpenses := CategoryTotal(buckets.DeductibleExpense).Add(CategoryTotal(outflows(buckets.VATSale)))
	netIncome := totalIncome.Sub(totalExpenses)

	liability := vatReturn.NetVATPayable
	if business != nil && !business.IsSmallBusiness {
		liability = liability.Add(c.companyIncomeTax(netIncome))
	}

	receiptCount := len(withReceipts(inPeriod))
	summary := models.MonthlyTaxSummary{
		Period:                period,
		TotalIncome:           totalIncome,
		TotalExpenses:         totalExpenses,
		NetIncome:             netIncome,
		VATReturn:             vatReturn,
		EstimatedTaxLiability: liability,
		TransactionCount:      len(inPeriod),
		ReceiptCount:          receiptCount,
		MissingReceipts:       len(inPeriod) - receiptCount,
	}

	c.logger.Debug("Computed monthly summary",
		logging.F(logging.FieldPeriod, period.Key()),
		logging.F(logging.FieldCount, summary.TransactionCount))

	return summary, nil
}

func (c *Calculator) companyIncomeTax(netIncome decimal.Decimal) decimal.Decimal {
	return netIncome.Mul(c.rates.CompanyIncomeTaxRate)
}
