package models

// Tax categories a transaction can be tagged with.
const (
	CategoryTaxableIncome     TaxCategory = "taxable_income"
	CategoryVATSale           TaxCategory = "vat_sale"
	CategoryDeductibleExpense TaxCategory = "deductible_expense"
	CategoryNonTaxable        TaxCategory = "non_taxable"
)

// Bucket name used for transactions without a tax category.
const CategoryUncategorized = "uncategorized"

// Filing statuses
const (
	StatusPending FilingStatus = "pending"
	StatusDraft   FilingStatus = "draft"
	StatusFiled   FilingStatus = "filed"
	StatusLate    FilingStatus = "late"
	StatusOverdue FilingStatus = "overdue"
)

// Business types
const (
	BusinessRegistered    BusinessType = "registered"
	BusinessUnregistered  BusinessType = "unregistered"
	BusinessSmallBusiness BusinessType = "small_business"
)

// Period kinds
const (
	PeriodMonthly   PeriodKind = "monthly"
	PeriodQuarterly PeriodKind = "quarterly"
	PeriodAnnual    PeriodKind = "annual"
)

// Reminder types and priorities
const (
	ReminderFilingDue      ReminderType = "filing_due"
	ReminderPaymentDue     ReminderType = "payment_due"
	ReminderMissingReceipt ReminderType = "missing_receipt"

	PriorityLow    ReminderPriority = "low"
	PriorityMedium ReminderPriority = "medium"
	PriorityHigh   ReminderPriority = "high"
)

// Default currency of all amounts. Amounts are never converted.
const CurrencyCode = "NGN"

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
