// Package container provides dependency injection for the ngtax application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"io"
	"time"

	"fjacquet/ngtax/internal/categorizer"
	"fjacquet/ngtax/internal/clock"
	"fjacquet/ngtax/internal/config"
	"fjacquet/ngtax/internal/dateutils"
	"fjacquet/ngtax/internal/logging"
	"fjacquet/ngtax/internal/report"
	"fjacquet/ngtax/internal/seed"
	"fjacquet/ngtax/internal/store"
	"fjacquet/ngtax/internal/taxcalc"

	"github.com/shopspring/decimal"
)

// Option adjusts how the container is wired.
type Option func(*options)

type options struct {
	demo             bool
	transactionsFile string
	logger           logging.Logger
	aiClient         categorizer.AIClient
	clock            clock.Clock
}

// WithDemo serves the built-in demo snapshot instead of the data files.
func WithDemo(demo bool) Option {
	return func(o *options) { o.demo = demo }
}

// WithTransactionsFile overrides the configured transactions CSV.
func WithTransactionsFile(path string) Option {
	return func(o *options) { o.transactionsFile = path }
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithAIClient injects an AI client, bypassing Gemini.
func WithAIClient(client categorizer.AIClient) Option {
	return func(o *options) { o.aiClient = client }
}

// WithClock replaces the clock derived from clock.now.
func WithClock(clk clock.Clock) Option {
	return func(o *options) { o.clock = clk }
}

// Container holds all application dependencies and provides methods to access them.
// Container is immutable after creation.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	clock       clock.Clock
	calculator  *taxcalc.Calculator
	store       *store.FileStore
	provider    seed.Provider
	aiClient    categorizer.AIClient
	categorizer *categorizer.Categorizer
	reports     *report.ReportGenerator
	closers     []io.Closer
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	// Create logger first as it's needed by other components
	logger := o.logger
	if logger == nil {
		logger = config.ConfigureLogging(cfg)
	}

	clk := o.clock
	if clk == nil {
		var err error
		if clk, err = clockFromConfig(cfg); err != nil {
			return nil, err
		}
	}

	rates := RatesFromConfig(cfg)
	if err := rates.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tax rates: %w", err)
	}
	calculator := taxcalc.NewCalculator(rates, clk, logger)

	transactionsFile := cfg.DataPath(cfg.Data.Transactions)
	if o.transactionsFile != "" {
		transactionsFile = o.transactionsFile
	}
	fileStore := store.NewFileStore(
		transactionsFile,
		cfg.DataPath(cfg.Data.Filings),
		cfg.DataPath(cfg.Data.Business),
		cfg.DataPath(cfg.Data.Rules),
		rates.VATFilingDay,
		logger,
	)

	var provider seed.Provider = fileStore
	if o.demo {
		provider = seed.NewDemoProvider(clk, rates.VATFilingDay)
		logger.Debug("Using demo snapshot")
	}

	c := &Container{
		logger:     logger,
		config:     cfg,
		clock:      clk,
		calculator: calculator,
		store:      fileStore,
		provider:   provider,
		reports:    report.NewReportGenerator(logger),
	}

	// Create AI client (if enabled)
	aiClient := o.aiClient
	if aiClient == nil && cfg.AI.Enabled && cfg.AI.APIKey != "" {
		gemini, err := categorizer.NewGeminiClient(context.Background(), categorizer.GeminiConfig{
			APIKey:            cfg.AI.APIKey,
			Model:             cfg.AI.Model,
			RequestsPerMinute: cfg.AI.RequestsPerMinute,
			Timeout:           time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create AI client: %w", err)
		}
		aiClient = gemini
		c.closers = append(c.closers, gemini)
	}
	if aiClient != nil {
		logger.Debug("AI categorization enabled")
	}
	c.aiClient = aiClient

	c.categorizer = categorizer.NewCategorizer(fileStore, aiClient, categorizer.Options{
		CaseSensitive:     cfg.Categorization.CaseSensitive,
		OverwriteExisting: cfg.Categorization.OverwriteExisting,
	}, logger)

	logger.Debug("Container initialized successfully",
		logging.F("demo", o.demo),
		logging.F("ai_enabled", aiClient != nil),
		logging.F("strategies", c.categorizer.Strategies()))

	return c, nil
}

// RatesFromConfig converts the configured float rates to decimals.
func RatesFromConfig(cfg *config.Config) taxcalc.Rates {
	return taxcalc.Rates{
		VATRate:                decimal.NewFromFloat(cfg.Tax.VATRate),
		VATFilingDay:           cfg.Tax.VATFilingDay,
		CompanyIncomeTaxRate:   decimal.NewFromFloat(cfg.Tax.CompanyIncomeTaxRate),
		SmallBusinessThreshold: decimal.NewFromFloat(cfg.Tax.SmallBusinessThreshold),
	}
}

// ReminderPreferences converts the reminders section of the configuration.
func ReminderPreferences(cfg *config.Config) taxcalc.ReminderPreferences {
	return taxcalc.ReminderPreferences{
		EnableReminders:    cfg.Reminders.Enabled,
		ReminderDaysBefore: cfg.Reminders.DaysBefore,
	}
}

func clockFromConfig(cfg *config.Config) (clock.Clock, error) {
	if cfg.Clock.Now == "" {
		return clock.System{}, nil
	}
	now, err := dateutils.ParseTimestamp(cfg.Clock.Now)
	if err != nil {
		return nil, fmt.Errorf("invalid clock.now: %w", err)
	}
	return clock.NewFixed(now), nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetClock returns the clock shared by the calculator and the demo seed.
func (c *Container) GetClock() clock.Clock {
	return c.clock
}

// GetCalculator returns the tax calculator.
func (c *Container) GetCalculator() *taxcalc.Calculator {
	return c.calculator
}

// GetStore returns the file store. It is wired even in demo mode because it
// also serves the category rules.
func (c *Container) GetStore() *store.FileStore {
	return c.store
}

// GetProvider returns the snapshot provider.
func (c *Container) GetProvider() seed.Provider {
	return c.provider
}

// GetCategorizer returns the container's categorizer instance.
func (c *Container) GetCategorizer() *categorizer.Categorizer {
	return c.categorizer
}

// GetAIClient returns the container's AI client instance.
// Returns nil if AI is not enabled.
func (c *Container) GetAIClient() categorizer.AIClient {
	return c.aiClient
}

// GetReportGenerator returns the report generator.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.reports
}

// Close releases the AI client, if any.
func (c *Container) Close() error {
	var firstErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	c.logger.Debug("Container closed")
	return firstErr
}
