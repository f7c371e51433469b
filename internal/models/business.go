package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BusinessTaxInfo is the business profile supplied by the caller. Only
// IsSmallBusiness influences the computed liability.
type BusinessTaxInfo struct {
	BusinessName     string          `json:"businessName" yaml:"business_name"`
	CACNumber        *string         `json:"cacNumber,omitempty" yaml:"cac_number,omitempty"`
	TINNumber        *string         `json:"tinNumber,omitempty" yaml:"tin_number,omitempty"`
	BusinessType     BusinessType    `json:"businessType" yaml:"business_type"`
	AnnualTurnover   decimal.Decimal `json:"annualTurnover" yaml:"annual_turnover"`
	IsSmallBusiness  bool            `json:"isSmallBusiness" yaml:"is_small_business"`
	RegistrationDate *time.Time      `json:"registrationDate,omitempty" yaml:"registration_date,omitempty"`
	TaxOffice        *string         `json:"taxOffice,omitempty" yaml:"tax_office,omitempty"`
}

// FilingRecord is a prior or pending periodic return.
type FilingRecord struct {
	ID                 string        `json:"id" yaml:"id"`
	Period             TaxPeriodInfo `json:"period" yaml:"period"`
	Status             FilingStatus  `json:"status" yaml:"status"`
	DueDate            time.Time     `json:"dueDate" yaml:"due_date"`
	FiledDate          *time.Time    `json:"filedDate,omitempty" yaml:"filed_date,omitempty"`
	ConfirmationNumber *string       `json:"confirmationNumber,omitempty" yaml:"confirmation_number,omitempty"`
}

// ComplianceScore is the weighted compliance metric with its components.
// The component fields are percentages in [0, 100].
type ComplianceScore struct {
	Score                  int       `json:"score" yaml:"score"`
	FilingOnTime           float64   `json:"filingOnTime" yaml:"filing_on_time"`
	ReceiptCoverage        float64   `json:"receiptCoverage" yaml:"receipt_coverage"`
	CategorizationComplete float64   `json:"categorizationComplete" yaml:"categorization_complete"`
	LastUpdated            time.Time `json:"lastUpdated" yaml:"last_updated"`
}

// ReminderType identifies what a reminder is about.
type ReminderType string

// ReminderPriority orders reminders for display.
type ReminderPriority string

// TaxReminder is a notification derived from a summary and the clock.
type TaxReminder struct {
	ID        string           `json:"id" yaml:"id"`
	Type      ReminderType     `json:"type" yaml:"type"`
	Title     string           `json:"title" yaml:"title"`
	Message   string           `json:"message" yaml:"message"`
	DueDate   *time.Time       `json:"dueDate,omitempty" yaml:"due_date,omitempty"`
	Priority  ReminderPriority `json:"priority" yaml:"priority"`
	IsRead    bool             `json:"isRead" yaml:"is_read"`
	CreatedAt time.Time        `json:"createdAt" yaml:"created_at"`
}
