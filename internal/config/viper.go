// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"fjacquet/ngtax/internal/dateutils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log            LogConfig            `mapstructure:"log" yaml:"log"`
	Tax            TaxConfig            `mapstructure:"tax" yaml:"tax"`
	Reminders      RemindersConfig      `mapstructure:"reminders" yaml:"reminders"`
	Data           DataConfig           `mapstructure:"data" yaml:"data"`
	AI             AIConfig             `mapstructure:"ai" yaml:"ai"`
	Categorization CategorizationConfig `mapstructure:"categorization" yaml:"categorization"`
	Report         ReportConfig         `mapstructure:"report" yaml:"report"`
	Clock          ClockConfig          `mapstructure:"clock" yaml:"clock"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// TaxConfig holds the jurisdiction rates.
type TaxConfig struct {
	VATRate                float64 `mapstructure:"vat_rate" yaml:"vat_rate"`
	VATFilingDay           int     `mapstructure:"vat_filing_day" yaml:"vat_filing_day"`
	CompanyIncomeTaxRate   float64 `mapstructure:"company_income_tax_rate" yaml:"company_income_tax_rate"`
	SmallBusinessThreshold float64 `mapstructure:"small_business_threshold" yaml:"small_business_threshold"`
}

// RemindersConfig controls reminder generation.
type RemindersConfig struct {
	Enabled    bool `mapstructure:"enabled" yaml:"enabled"`
	DaysBefore int  `mapstructure:"days_before" yaml:"days_before"`
}

// DataConfig locates the snapshot files. Relative file names are resolved
// against Directory when it is set.
type DataConfig struct {
	Directory    string `mapstructure:"directory" yaml:"directory"`
	Transactions string `mapstructure:"transactions" yaml:"transactions"`
	Filings      string `mapstructure:"filings" yaml:"filings"`
	Business     string `mapstructure:"business" yaml:"business"`
	Rules        string `mapstructure:"rules" yaml:"rules"`
}

// AIConfig configures the Gemini categorization strategy.
type AIConfig struct {
	Enabled           bool   `mapstructure:"enabled" yaml:"enabled"`
	Model             string `mapstructure:"model" yaml:"model"`
	RequestsPerMinute int    `mapstructure:"requests_per_minute" yaml:"requests_per_minute"`
	TimeoutSeconds    int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	APIKey            string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
}

// CategorizationConfig tunes the keyword strategy.
type CategorizationConfig struct {
	CaseSensitive     bool `mapstructure:"case_sensitive" yaml:"case_sensitive"`
	OverwriteExisting bool `mapstructure:"overwrite_existing" yaml:"overwrite_existing"`
}

// ReportConfig selects the default output format.
type ReportConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// ClockConfig pins "now" to a fixed instant when Now is set.
type ClockConfig struct {
	Now string `mapstructure:"now" yaml:"now"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.ngtax")
	v.AddConfigPath(".ngtax")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("NGTAX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	// 5. API key always comes from the unprefixed variable
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_API_KEY: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration built from defaults only.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Tax defaults (Nigeria)
	v.SetDefault("tax.vat_rate", 0.075)
	v.SetDefault("tax.vat_filing_day", 21)
	v.SetDefault("tax.company_income_tax_rate", 0.30)
	v.SetDefault("tax.small_business_threshold", 50_000_000.0)

	// Reminder defaults
	v.SetDefault("reminders.enabled", true)
	v.SetDefault("reminders.days_before", 5)

	// Data defaults
	v.SetDefault("data.directory", "")
	v.SetDefault("data.transactions", "transactions.csv")
	v.SetDefault("data.filings", "filings.yaml")
	v.SetDefault("data.business", "business.yaml")
	v.SetDefault("data.rules", "category_rules.yaml")

	// AI defaults
	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.requests_per_minute", 10)
	v.SetDefault("ai.timeout_seconds", 30)

	// Categorization defaults
	v.SetDefault("categorization.case_sensitive", false)
	v.SetDefault("categorization.overwrite_existing", false)

	// Report defaults
	v.SetDefault("report.format", "json")

	v.SetDefault("clock.now", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate rates
	if config.Tax.VATRate < 0 || config.Tax.VATRate > 1 {
		return fmt.Errorf("tax.vat_rate must be between 0 and 1, got: %f", config.Tax.VATRate)
	}
	if config.Tax.CompanyIncomeTaxRate < 0 || config.Tax.CompanyIncomeTaxRate > 1 {
		return fmt.Errorf("tax.company_income_tax_rate must be between 0 and 1, got: %f", config.Tax.CompanyIncomeTaxRate)
	}
	if config.Tax.VATFilingDay < 1 || config.Tax.VATFilingDay > 28 {
		return fmt.Errorf("tax.vat_filing_day must be between 1 and 28, got: %d", config.Tax.VATFilingDay)
	}
	if config.Tax.SmallBusinessThreshold <= 0 {
		return fmt.Errorf("tax.small_business_threshold must be positive, got: %f", config.Tax.SmallBusinessThreshold)
	}

	if config.Reminders.DaysBefore < 0 {
		return fmt.Errorf("reminders.days_before must not be negative, got: %d", config.Reminders.DaysBefore)
	}

	// Validate AI configuration
	if config.AI.Enabled {
		if config.AI.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
		}

		if config.AI.RequestsPerMinute < 1 || config.AI.RequestsPerMinute > 1000 {
			return fmt.Errorf("ai.requests_per_minute must be between 1 and 1000, got: %d", config.AI.RequestsPerMinute)
		}

		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}
	}

	switch config.Report.Format {
	case "json", "yaml", "csv":
	default:
		return fmt.Errorf("invalid report format: %s (must be 'json', 'yaml' or 'csv')", config.Report.Format)
	}

	if config.Clock.Now != "" {
		if _, err := dateutils.ParseTimestamp(config.Clock.Now); err != nil {
			return fmt.Errorf("invalid clock.now: %w", err)
		}
	}

	return nil
}
