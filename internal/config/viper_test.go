package config

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/ngtax/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	chdirTemp(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, 0.075, config.Tax.VATRate)
	assert.Equal(t, 21, config.Tax.VATFilingDay)
	assert.Equal(t, 0.30, config.Tax.CompanyIncomeTaxRate)
	assert.Equal(t, 50_000_000.0, config.Tax.SmallBusinessThreshold)
	assert.True(t, config.Reminders.Enabled)
	assert.Equal(t, 5, config.Reminders.DaysBefore)
	assert.Equal(t, "transactions.csv", config.Data.Transactions)
	assert.Equal(t, "filings.yaml", config.Data.Filings)
	assert.Equal(t, "business.yaml", config.Data.Business)
	assert.Equal(t, "category_rules.yaml", config.Data.Rules)
	assert.False(t, config.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", config.AI.Model)
	assert.Equal(t, 10, config.AI.RequestsPerMinute)
	assert.Equal(t, 30, config.AI.TimeoutSeconds)
	assert.False(t, config.Categorization.CaseSensitive)
	assert.Equal(t, "json", config.Report.Format)
	assert.Empty(t, config.Clock.Now)
}

func TestDefault_MatchesInitializedDefaults(t *testing.T) {
	clearTestEnvVars(t)
	chdirTemp(t)

	config, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, config, Default())
	assert.NoError(t, validateConfig(Default()))
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	chdirTemp(t)

	testEnvVars := map[string]string{
		"NGTAX_LOG_LEVEL":          "debug",
		"NGTAX_LOG_FORMAT":         "json",
		"NGTAX_TAX_VAT_RATE":       "0.05",
		"NGTAX_TAX_VAT_FILING_DAY": "14",
		"NGTAX_REMINDERS_ENABLED":  "false",
		"NGTAX_AI_ENABLED":         "true",
		"NGTAX_AI_MODEL":           "gemini-1.5-pro",
		"NGTAX_REPORT_FORMAT":      "yaml",
		"NGTAX_CLOCK_NOW":          "2026-03-15T10:00:00Z",
		"NGTAX_DATA_DIRECTORY":     "/srv/ngtax",
		"GEMINI_API_KEY":           "test-api-key",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, 0.05, config.Tax.VATRate)
	assert.Equal(t, 14, config.Tax.VATFilingDay)
	assert.False(t, config.Reminders.Enabled)
	assert.True(t, config.AI.Enabled)
	assert.Equal(t, "gemini-1.5-pro", config.AI.Model)
	assert.Equal(t, "yaml", config.Report.Format)
	assert.Equal(t, "2026-03-15T10:00:00Z", config.Clock.Now)
	assert.Equal(t, "test-api-key", config.AI.APIKey)
	assert.Equal(t, filepath.Join("/srv/ngtax", "filings.yaml"), config.DataPath(config.Data.Filings))
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)
	dir := chdirTemp(t)

	configContent := `
log:
  level: "warn"
  format: "json"
tax:
  vat_rate: 0.1
  small_business_threshold: 25000000
reminders:
  days_before: 7
data:
  transactions: "ledger.csv"
categorization:
  case_sensitive: true
report:
  format: "csv"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0600))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, 0.1, config.Tax.VATRate)
	assert.Equal(t, 25_000_000.0, config.Tax.SmallBusinessThreshold)
	assert.Equal(t, 21, config.Tax.VATFilingDay)
	assert.Equal(t, 7, config.Reminders.DaysBefore)
	assert.Equal(t, "ledger.csv", config.Data.Transactions)
	assert.True(t, config.Categorization.CaseSensitive)
	assert.Equal(t, "csv", config.Report.Format)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)
	dir := chdirTemp(t)

	configContent := `
log:
  level: "warn"
reminders:
  days_before: 7
tax:
  vat_filing_day: 20
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0600))

	t.Setenv("NGTAX_LOG_LEVEL", "error")
	t.Setenv("NGTAX_REMINDERS_DAYS_BEFORE", "3")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)      // env var wins
	assert.Equal(t, 3, config.Reminders.DaysBefore) // env var wins
	assert.Equal(t, 20, config.Tax.VATFilingDay)    // config file value
}

func TestInitializeConfig_InvalidFromEnvironment(t *testing.T) {
	clearTestEnvVars(t)
	chdirTemp(t)
	t.Setenv("NGTAX_AI_ENABLED", "true")

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY required")
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{"invalid log level", func(c *Config) { c.Log.Level = "invalid" }, "invalid log level"},
		{"invalid log format", func(c *Config) { c.Log.Format = "xml" }, "invalid log format"},
		{"negative VAT rate", func(c *Config) { c.Tax.VATRate = -0.1 }, "tax.vat_rate must be between 0 and 1"},
		{"CIT rate above one", func(c *Config) { c.Tax.CompanyIncomeTaxRate = 1.5 }, "tax.company_income_tax_rate must be between 0 and 1"},
		{"filing day zero", func(c *Config) { c.Tax.VATFilingDay = 0 }, "tax.vat_filing_day must be between 1 and 28"},
		{"filing day 31", func(c *Config) { c.Tax.VATFilingDay = 31 }, "tax.vat_filing_day must be between 1 and 28"},
		{"zero threshold", func(c *Config) { c.Tax.SmallBusinessThreshold = 0 }, "tax.small_business_threshold must be positive"},
		{"negative reminder lead", func(c *Config) { c.Reminders.DaysBefore = -1 }, "reminders.days_before must not be negative"},
		{"AI enabled without API key", func(c *Config) { c.AI.Enabled = true }, "GEMINI_API_KEY required when AI is enabled"},
		{
			"invalid requests per minute",
			func(c *Config) {
				c.AI.Enabled = true
				c.AI.APIKey = "test-key"
				c.AI.RequestsPerMinute = 0
			},
			"ai.requests_per_minute must be between 1 and 1000",
		},
		{
			"invalid timeout seconds",
			func(c *Config) {
				c.AI.Enabled = true
				c.AI.APIKey = "test-key"
				c.AI.TimeoutSeconds = 0
			},
			"ai.timeout_seconds must be between 1 and 300",
		},
		{"invalid report format", func(c *Config) { c.Report.Format = "pdf" }, "invalid report format"},
		{"invalid clock", func(c *Config) { c.Clock.Now = "yesterday" }, "invalid clock.now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestDataPath(t *testing.T) {
	config := Default()
	assert.Equal(t, "filings.yaml", config.DataPath("filings.yaml"))

	config.Data.Directory = "data"
	assert.Equal(t, filepath.Join("data", "filings.yaml"), config.DataPath("filings.yaml"))
	assert.Equal(t, "/abs/filings.yaml", config.DataPath("/abs/filings.yaml"))
	assert.Equal(t, "", config.DataPath(""))
}

func TestLoadEnv(t *testing.T) {
	clearTestEnvVars(t)
	dir := chdirTemp(t)
	logger := &logging.MockLogger{}

	LoadEnv(logger)
	assert.True(t, logger.HasEntry("DEBUG", "No .env file found, using environment variables"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("NGTAX_LOG_LEVEL=debug\n"), 0600))
	t.Setenv("NGTAX_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("NGTAX_LOG_LEVEL"))

	LoadEnv(logger)
	assert.True(t, logger.HasEntry("DEBUG", "Loaded environment variables"))
	assert.Equal(t, "debug", GetEnv("NGTAX_LOG_LEVEL", "info"))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("NGTAX_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("NGTAX_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("NGTAX_TEST_MISSING_VALUE", "fallback"))
}

func TestConfigureLogging(t *testing.T) {
	config := Default()
	config.Log.Format = "json"
	logger := ConfigureLogging(config)
	_, ok := logger.(*logging.LogrusAdapter)
	assert.True(t, ok)
}

// chdirTemp moves into a fresh directory for the duration of the test so no
// config.yaml or .env from the working tree is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
	})
	return dir
}

// clearTestEnvVars unsets every variable the tests may set. t.Setenv
// restores the previous values when the test ends.
func clearTestEnvVars(t *testing.T) {
	envVars := []string{
		"NGTAX_LOG_LEVEL",
		"NGTAX_LOG_FORMAT",
		"NGTAX_TAX_VAT_RATE",
		"NGTAX_TAX_VAT_FILING_DAY",
		"NGTAX_TAX_COMPANY_INCOME_TAX_RATE",
		"NGTAX_TAX_SMALL_BUSINESS_THRESHOLD",
		"NGTAX_REMINDERS_ENABLED",
		"NGTAX_REMINDERS_DAYS_BEFORE",
		"NGTAX_DATA_DIRECTORY",
		"NGTAX_AI_ENABLED",
		"NGTAX_AI_MODEL",
		"NGTAX_REPORT_FORMAT",
		"NGTAX_CLOCK_NOW",
		"GEMINI_API_KEY",
	}
	for _, envVar := range envVars {
		t.Setenv(envVar, "")
		require.NoError(t, os.Unsetenv(envVar))
	}
}
