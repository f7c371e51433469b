package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/ngtax/internal/categorizer"
	"fjacquet/ngtax/internal/clock"
	"fjacquet/ngtax/internal/config"
	"fjacquet/ngtax/internal/logging"
	"fjacquet/ngtax/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer_NilConfig(t *testing.T) {
	_, err := NewContainer(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration cannot be nil")
}

func TestNewContainer_Defaults(t *testing.T) {
	cfg := config.Default()
	logger := &logging.MockLogger{}

	c, err := NewContainer(cfg, WithLogger(logger))
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Same(t, cfg, c.GetConfig())
	assert.Equal(t, logger, c.GetLogger())
	assert.IsType(t, clock.System{}, c.GetClock())
	assert.Nil(t, c.GetAIClient())
	assert.Equal(t, []string{"Counterparty", "Keyword"}, c.GetCategorizer().Strategies())
	assert.NotNil(t, c.GetReportGenerator())
	assert.Same(t, c.GetStore(), c.GetProvider())
	assert.Equal(t, "transactions.csv", c.GetStore().TransactionsFile)

	rates := c.GetCalculator().Rates()
	assert.True(t, rates.VATRate.Equal(decimal.RequireFromString("0.075")))
	assert.True(t, rates.CompanyIncomeTaxRate.Equal(decimal.RequireFromString("0.3")))
	assert.True(t, rates.SmallBusinessThreshold.Equal(decimal.NewFromInt(50_000_000)))
	assert.Equal(t, 21, rates.VATFilingDay)
	assert.True(t, logger.HasEntry("DEBUG", "Container initialized successfully"))
}

func TestNewContainer_FixedClockFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Clock.Now = "2026-04-18T12:00:00Z"

	c, err := NewContainer(cfg, WithLogger(&logging.MockLogger{}))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.April, 18, 12, 0, 0, 0, time.UTC), c.GetCalculator().Now().UTC())

	cfg.Clock.Now = "not a date"
	_, err = NewContainer(cfg, WithLogger(&logging.MockLogger{}))
	assert.Error(t, err)
}

func TestNewContainer_InvalidRates(t *testing.T) {
	cfg := config.Default()
	cfg.Tax.VATFilingDay = 31

	_, err := NewContainer(cfg, WithLogger(&logging.MockLogger{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tax rates")
}

func TestNewContainer_Demo(t *testing.T) {
	fixed := clock.NewFixed(time.Date(2026, time.March, 18, 10, 0, 0, 0, time.UTC))
	c, err := NewContainer(config.Default(), WithDemo(true), WithClock(fixed), WithLogger(&logging.MockLogger{}))
	require.NoError(t, err)

	snap, err := c.GetProvider().Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Transactions, 7)
	assert.Len(t, snap.Filings, 2)
	assert.NotNil(t, snap.Business)
}

func TestNewContainer_DataFiles(t *testing.T) {
	dir := t.TempDir()
	csv := "ID,Amount,Timestamp,TaxCategory,ReceiptURL,Description,Counterparty\n" +
		"1,1000,2026-03-02,vat_sale,,Invoice,Acme\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.csv"), []byte(csv), 0600))

	cfg := config.Default()
	cfg.Data.Directory = dir

	c, err := NewContainer(cfg, WithLogger(&logging.MockLogger{}))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "transactions.csv"), c.GetStore().TransactionsFile)

	snap, err := c.GetProvider().Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Transactions, 1)
	assert.Empty(t, snap.Filings)
	assert.Nil(t, snap.Business)

	override := filepath.Join(dir, "other.csv")
	c, err = NewContainer(cfg, WithTransactionsFile(override), WithLogger(&logging.MockLogger{}))
	require.NoError(t, err)
	assert.Equal(t, override, c.GetStore().TransactionsFile)
}

func TestNewContainer_InjectedAIClient(t *testing.T) {
	ai := &categorizer.MockAIClient{Default: models.CategoryTaxableIncome}
	c, err := NewContainer(config.Default(), WithAIClient(ai), WithLogger(&logging.MockLogger{}))
	require.NoError(t, err)

	assert.Equal(t, ai, c.GetAIClient())
	assert.Equal(t, []string{"Counterparty", "Keyword", "AI"}, c.GetCategorizer().Strategies())

	result, err := c.GetCategorizer().CategorizeAll(context.Background(), []models.Transaction{
		{ID: "x", Amount: decimal.NewFromInt(5), Timestamp: time.Now(), Description: "mystery"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.ByStrategy["AI"])
}

func TestReminderPreferences(t *testing.T) {
	cfg := config.Default()
	cfg.Reminders.DaysBefore = 3
	prefs := ReminderPreferences(cfg)
	assert.True(t, prefs.EnableReminders)
	assert.Equal(t, 3, prefs.ReminderDaysBefore)
}
