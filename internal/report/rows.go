package report

import (
	"fmt"
	"strconv"
	"time"

	"fjacquet/ngtax/internal/categorizer"
	"fjacquet/ngtax/internal/dateutils"
	"fjacquet/ngtax/internal/models"
	"fjacquet/ngtax/internal/taxcalc"
)

// PeriodRow is the CSV layout of a tax period.
type PeriodRow struct {
	Period    string `csv:"period"`
	Kind      string `csv:"kind"`
	Year      int    `csv:"year"`
	Month     int    `csv:"month"`
	Quarter   int    `csv:"quarter"`
	StartDate string `csv:"start_date"`
	EndDate   string `csv:"end_date"`
}

// VATReturnRow is the CSV layout of a VAT return.
type VATReturnRow struct {
	ID               string `csv:"id"`
	Period           string `csv:"period"`
	TotalSales       string `csv:"total_sales"`
	VATRate          string `csv:"vat_rate"`
	VATCollected     string `csv:"vat_collected"`
	VATDeductible    string `csv:"vat_deductible"`
	NetVATPayable    string `csv:"net_vat_payable"`
	DueDate          string `csv:"due_date"`
	Status           string `csv:"status"`
	TransactionCount int    `csv:"transaction_count"`
	ReceiptCount     int    `csv:"receipt_count"`
}

// SummaryRow is the CSV layout of a monthly tax summary.
type SummaryRow struct {
	Period                string `csv:"period"`
	TotalIncome           string `csv:"total_income"`
	TotalExpenses         string `csv:"total_expenses"`
	NetIncome             string `csv:"net_income"`
	VATCollected          string `csv:"vat_collected"`
	VATDeductible         string `csv:"vat_deductible"`
	NetVATPayable         string `csv:"net_vat_payable"`
	VATDueDate            string `csv:"vat_due_date"`
	VATStatus             string `csv:"vat_status"`
	EstimatedTaxLiability string `csv:"estimated_tax_liability"`
	TransactionCount      int    `csv:"transaction_count"`
	ReceiptCount          int    `csv:"receipt_count"`
	MissingReceipts       int    `csv:"missing_receipts"`
}

// DeadlineRow is the CSV layout of a VAT deadline.
type DeadlineRow struct {
	Period        string `csv:"period"`
	DueDate       string `csv:"due_date"`
	DaysRemaining int    `csv:"days_remaining"`
	Overdue       bool   `csv:"overdue"`
	Description   string `csv:"description"`
}

// ComplianceRow is the CSV layout of a compliance breakdown.
type ComplianceRow struct {
	Score                  int    `csv:"score"`
	FilingOnTime           string `csv:"filing_on_time"`
	ReceiptCoverage        string `csv:"receipt_coverage"`
	CategorizationComplete string `csv:"categorization_complete"`
	LastUpdated            string `csv:"last_updated"`
}

// ReminderRow is the CSV layout of a reminder.
type ReminderRow struct {
	ID       string `csv:"id"`
	Type     string `csv:"type"`
	Priority string `csv:"priority"`
	Title    string `csv:"title"`
	Message  string `csv:"message"`
	DueDate  string `csv:"due_date"`
}

// BucketRow is one categorized transaction.
type BucketRow struct {
	Bucket        string `csv:"bucket"`
	TransactionID string `csv:"transaction_id"`
	Amount        string `csv:"amount"`
	Timestamp     string `csv:"timestamp"`
	HasReceipt    bool   `csv:"has_receipt"`
	Description   string `csv:"description"`
}

// Rows flattens a known result type into a slice of CSV row structs.
func Rows(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case models.TaxPeriodInfo:
		return []PeriodRow{periodRow(v)}, nil
	case models.VATReturn:
		return []VATReturnRow{vatReturnRow(v)}, nil
	case models.MonthlyTaxSummary:
		return []SummaryRow{summaryRow(v)}, nil
	case taxcalc.Deadline:
		return []DeadlineRow{{
			Period:        v.Period.Key(),
			DueDate:       dateutils.ToISODate(v.DueDate),
			DaysRemaining: v.DaysRemaining,
			Overdue:       v.Overdue,
			Description:   v.Describe(),
		}}, nil
	case models.ComplianceScore:
		return []ComplianceRow{{
			Score:                  v.Score,
			FilingOnTime:           percent(v.FilingOnTime),
			ReceiptCoverage:        percent(v.ReceiptCoverage),
			CategorizationComplete: percent(v.CategorizationComplete),
			LastUpdated:            dateutils.FormatTimestamp(v.LastUpdated),
		}}, nil
	case []models.TaxReminder:
		rows := make([]ReminderRow, 0, len(v))
		for _, r := range v {
			rows = append(rows, ReminderRow{
				ID:       r.ID,
				Type:     string(r.Type),
				Priority: string(r.Priority),
				Title:    r.Title,
				Message:  r.Message,
				DueDate:  optionalDate(r.DueDate),
			})
		}
		return rows, nil
	case taxcalc.CategorizedTransactions:
		return bucketRows(v), nil
	case categorizer.Result:
		return v.Suggestions, nil
	case []categorizer.Suggestion:
		return v, nil
	default:
		return nil, fmt.Errorf("CSV output is not supported for %T", value)
	}
}

func periodRow(p models.TaxPeriodInfo) PeriodRow {
	return PeriodRow{
		Period:    p.Key(),
		Kind:      string(p.Kind),
		Year:      p.Year,
		Month:     p.Month,
		Quarter:   p.Quarter,
		StartDate: dateutils.FormatTimestamp(p.StartDate),
		EndDate:   dateutils.FormatTimestamp(p.EndDate),
	}
}

func vatReturnRow(r models.VATReturn) VATReturnRow {
	return VATReturnRow{
		ID:               r.ID,
		Period:           r.Period.Key(),
		TotalSales:       r.TotalSales.StringFixed(2),
		VATRate:          r.VATRate.String(),
		VATCollected:     r.VATCollected.StringFixed(2),
		VATDeductible:    r.VATDeductible.StringFixed(2),
		NetVATPayable:    r.NetVATPayable.StringFixed(2),
		DueDate:          dateutils.ToISODate(r.DueDate),
		Status:           string(r.Status),
		TransactionCount: len(r.TransactionIDs),
		ReceiptCount:     len(r.ReceiptIDs),
	}
}

func summaryRow(s models.MonthlyTaxSummary) SummaryRow {
	return SummaryRow{
		Period:                s.Period.Key(),
		TotalIncome:           s.TotalIncome.StringFixed(2),
		TotalExpenses:         s.TotalExpenses.StringFixed(2),
		NetIncome:             s.NetIncome.StringFixed(2),
		VATCollected:          s.VATReturn.VATCollected.StringFixed(2),
		VATDeductible:         s.VATReturn.VATDeductible.StringFixed(2),
		NetVATPayable:         s.VATReturn.NetVATPayable.StringFixed(2),
		VATDueDate:            dateutils.ToISODate(s.VATReturn.DueDate),
		VATStatus:             string(s.VATReturn.Status),
		EstimatedTaxLiability: s.EstimatedTaxLiability.StringFixed(2),
		TransactionCount:      s.TransactionCount,
		ReceiptCount:          s.ReceiptCount,
		MissingReceipts:       s.MissingReceipts,
	}
}

func bucketRows(c taxcalc.CategorizedTransactions) []BucketRow {
	rows := make([]BucketRow, 0, c.Len())
	for _, name := range taxcalc.BucketNames() {
		for _, tx := range c.Bucket(name) {
			rows = append(rows, BucketRow{
				Bucket:        name,
				TransactionID: tx.ID,
				Amount:        tx.Amount.StringFixed(2),
				Timestamp:     dateutils.FormatTimestamp(tx.Timestamp),
				HasReceipt:    tx.HasReceipt(),
				Description:   tx.Description,
			})
		}
	}
	return rows
}

func percent(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64)
}

func optionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return dateutils.ToISODate(*t)
}
