package seed

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/ngtax/internal/clock"
	"fjacquet/ngtax/internal/dateutils"
	"fjacquet/ngtax/internal/models"
	"fjacquet/ngtax/internal/taxcalc"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DemoProvider returns a canned ledger for a registered Lagos business. All
// timestamps are relative to the clock, so the current month always has
// activity and the two months before it have filed returns.
type DemoProvider struct {
	clock     clock.Clock
	filingDay int
}

// NewDemoProvider creates a DemoProvider. filingDay is the VAT filing day used
// for the demo filings' due dates; values outside 1-28 fall back to 21.
func NewDemoProvider(clk clock.Clock, filingDay int) *DemoProvider {
	if clk == nil {
		clk = clock.System{}
	}
	if filingDay < 1 || filingDay > 28 {
		filingDay = taxcalc.DefaultRates().VATFilingDay
	}
	return &DemoProvider{clock: clk, filingDay: filingDay}
}

type demoEntry struct {
	id           string
	amount       string
	ago          time.Duration
	category     *models.TaxCategory
	receipt      string
	description  string
	counterparty string
}

var demoEntries = []demoEntry{
	{"1", "-45200", 0, models.CategoryDeductibleExpense.Ptr(), "/receipts/office_supplies.jpg", "Office supplies", "Shoprite"},
	{"2", "-50000", time.Hour, models.CategoryNonTaxable.Ptr(), "", "Transfer", "Sarah Johnson"},
	{"3", "-75000", 24 * time.Hour, models.CategoryDeductibleExpense.Ptr(), "/receipts/electric_bill.pdf", "Monthly electricity bill", "Ikeja Electric"},
	{"4", "2500000", 48 * time.Hour, models.CategoryVATSale.Ptr(), "", "Software licence invoice", "Acme Corp"},
	{"5", "-120500", 72 * time.Hour, models.CategoryVATSale.Ptr(), "/receipts/equipment_invoice.pdf", "Equipment purchase", "Jumia"},
	{"6", "350000", 96 * time.Hour, models.CategoryTaxableIncome.Ptr(), "", "Consulting fee", "Dangote Industries"},
	{"7", "-15000", 120 * time.Hour, nil, "", "POS withdrawal", ""},
}

// Snapshot builds the demo data against the current clock reading.
func (p *DemoProvider) Snapshot() (Snapshot, error) {
	now := p.clock.Now()

	txs := make([]models.Transaction, 0, len(demoEntries))
	for _, e := range demoEntries {
		tx := models.Transaction{
			ID:           e.id,
			Amount:       decimal.RequireFromString(e.amount),
			Timestamp:    now.Add(-e.ago),
			TaxCategory:  e.category,
			Description:  e.description,
			Counterparty: e.counterparty,
		}
		if e.receipt != "" {
			tx = tx.WithReceipt(e.receipt)
		}
		txs = append(txs, tx)
	}

	filings := make([]models.FilingRecord, 0, 2)
	for i, back := range []int{1, 2} {
		period, err := taxcalc.ResolvePeriod(dateutils.StartOfMonth(now).AddDate(0, -back, 0))
		if err != nil {
			return Snapshot{}, err
		}
		due := dateutils.DayOfFollowingMonth(period.Year, time.Month(period.Month), p.filingDay, period.Location())
		filed := due.AddDate(0, 0, -(2 + i))
		confirmation := fmt.Sprintf("NRS-%d-%s", period.Year, strings.ToUpper(uuid.NewString()[:7]))
		filings = append(filings, models.FilingRecord{
			ID:                 fmt.Sprintf("filing-%d", i+1),
			Period:             period,
			Status:             models.StatusFiled,
			DueDate:            due,
			FiledDate:          &filed,
			ConfirmationNumber: &confirmation,
		})
	}

	return Snapshot{
		Transactions: txs,
		Filings:      filings,
		Business:     DemoBusiness(),
	}, nil
}

// DemoBusiness returns the demo business profile, a registered company above
// the small-business threshold.
func DemoBusiness() *models.BusinessTaxInfo {
	cac := "RC1234567"
	tin := "TIN-987654321"
	office := "Lagos Tax Office"
	registered := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	return &models.BusinessTaxInfo{
		BusinessName:     "NGTAX Technologies Ltd",
		CACNumber:        &cac,
		TINNumber:        &tin,
		BusinessType:     models.BusinessRegistered,
		AnnualTurnover:   decimal.NewFromInt(85_000_000),
		IsSmallBusiness:  false,
		RegistrationDate: &registered,
		TaxOffice:        &office,
	}
}
