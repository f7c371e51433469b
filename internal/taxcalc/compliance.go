package taxcalc

import (
	"math"

	"fjacquet/ngtax/internal/models"
)

// Component weights of the compliance score.
const (
	FilingWeight         = 40.0
	ReceiptWeight        = 30.0
	CategorizationWeight = 30.0
)

// ComplianceScore returns the weighted 0-100 compliance score. With no
// filings the score is 0. Components are summed unrounded and the total is
// rounded half away from zero.
func ComplianceScore(filings []models.FilingRecord, txs []models.Transaction) int {
	if len(filings) == 0 {
		return 0
	}
	filing, receipt, categorization := complianceRatios(filings, txs)
	total := filing*FilingWeight + receipt*ReceiptWeight + categorization*CategorizationWeight
	return int(math.Round(total))
}

// ComplianceBreakdown returns the score together with its component
// percentages, stamped with the calculator's now.
func (c *Calculator) ComplianceBreakdown(filings []models.FilingRecord, txs []models.Transaction) models.ComplianceScore {
	filing, receipt, categorization := complianceRatios(filings, txs)
	return models.ComplianceScore{
		Score:                  ComplianceScore(filings, txs),
		FilingOnTime:           filing * 100,
		ReceiptCoverage:        receipt * 100,
		CategorizationComplete: categorization * 100,
		LastUpdated:            c.clock.Now(),
	}
}

func complianceRatios(filings []models.FilingRecord, txs []models.Transaction) (filing, receipt, categorization float64) {
	if len(filings) > 0 {
		filed := 0
		for _, f := range filings {
			if f.Status == models.StatusFiled {
				filed++
			}
		}
		filing = float64(filed) / float64(len(filings))
	}
	if len(txs) > 0 {
		withReceipt, categorized := 0, 0
		for _, tx := range txs {
			if tx.HasReceipt() {
				withReceipt++
			}
			if tx.IsCategorized() {
				categorized++
			}
		}
		receipt = float64(withReceipt) / float64(len(txs))
		categorization = float64(categorized) / float64(len(txs))
	}
	return filing, receipt, categorization
}
