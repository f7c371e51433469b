package taxcalc

import (
	"fjacquet/ngtax/internal/models"

	"github.com/shopspring/decimal"
)

// SelectInPeriod returns the transactions whose timestamp lies within
// [period.StartDate, period.EndDate], in input order.
func SelectInPeriod(txs []models.Transaction, period models.TaxPeriodInfo) []models.Transaction {
	selected := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if period.Contains(tx.Timestamp) {
			selected = append(selected, tx)
		}
	}
	return selected
}

func inflows(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.IsInflow() {
			out = append(out, tx)
		}
	}
	return out
}

func outflows(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.IsOutflow() {
			out = append(out, tx)
		}
	}
	return out
}

func withReceipts(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.HasReceipt() {
			out = append(out, tx)
		}
	}
	return out
}

// CategoryTotal returns the sum of the absolute amounts of txs.
func CategoryTotal(txs []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount.Abs())
	}
	return total
}
