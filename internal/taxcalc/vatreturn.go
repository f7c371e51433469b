package taxcalc

import (
	"fmt"

	"fjacquet/ngtax/internal/logging"
	"fjacquet/ngtax/internal/models"
)

// ComputeVATReturn filters txs to period and computes its VAT position.
// Positive vat_sale entries are sales, negative ones purchases whose VAT is
// deductible. NetVATPayable keeps its sign. ReceiptIDs lists only the sales
// that carry a receipt. Status is overdue once the due date has passed and
// pending otherwise.
func (c *Calculator) ComputeVATReturn(txs []models.Transaction, period models.TaxPeriodInfo) (models.VATReturn, error) {
	due, err := c.VATDueDate(period)
	if err != nil {
		return models.VATReturn{}, err
	}

	buckets := Categorize(SelectInPeriod(txs, period))
	sales := inflows(buckets.VATSale)
	purchases := outflows(buckets.VATSale)

	totalSales := CategoryTotal(sales)
	vatCollected := c.CalculateVAT(totalSales)
	vatDeductible := c.CalculateVAT(CategoryTotal(purchases))

	status := models.StatusPending
	if c.IsOverdue(due) {
		status = models.StatusOverdue
	}

	ret := models.VATReturn{
		ID:             fmt.Sprintf("vat-%d-%d", period.Year, period.Month),
		Period:         period,
		TotalSales:     totalSales,
		VATRate:        c.rates.VATRate,
		VATCollected:   vatCollected,
		VATDeductible:  vatDeductible,
		NetVATPayable:  vatCollected.Sub(vatDeductible),
		DueDate:        due,
		Status:         status,
		TransactionIDs: models.TransactionIDs(sales),
		ReceiptIDs:     models.TransactionIDs(withReceipts(sales)),
	}

	c.logger.Debug("Computed VAT return",
		logging.F(logging.FieldPeriod, period.Key()),
		logging.F(logging.FieldStatus, string(status)),
		logging.F(logging.FieldCount, len(sales)+len(purchases)))

	return ret, nil
}
