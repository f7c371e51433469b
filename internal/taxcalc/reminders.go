package taxcalc

import (
	"fmt"

	"fjacquet/ngtax/internal/logging"
	"fjacquet/ngtax/internal/models"

	"github.com/google/uuid"
)

// ReminderPreferences control which reminders are produced.
type ReminderPreferences struct {
	EnableReminders    bool `json:"enableReminders" yaml:"enable_reminders" mapstructure:"enabled"`
	ReminderDaysBefore int  `json:"reminderDaysBefore" yaml:"reminder_days_before" mapstructure:"days_before"`
}

// DefaultReminderPreferences enables reminders five days ahead.
func DefaultReminderPreferences() ReminderPreferences {
	return ReminderPreferences{EnableReminders: true, ReminderDaysBefore: 5}
}

// Reminders derives the reminders for a monthly summary:
//   - filing_due once the VAT due date is within ReminderDaysBefore days
//     (high priority on the last day), or high priority once overdue
//   - payment_due alongside it when net VAT is payable
//   - missing_receipt when some transactions lack receipts (medium priority
//     when more than half do)
func (c *Calculator) Reminders(summary models.MonthlyTaxSummary, prefs ReminderPreferences) []models.TaxReminder {
	reminders := []models.TaxReminder{}
	if !prefs.EnableReminders {
		return reminders
	}

	now := c.clock.Now()
	due := summary.VATReturn.DueDate
	days := c.DaysUntil(due)
	overdue := c.IsOverdue(due)
	period := summary.Period.String()

	newReminder := func(kind models.ReminderType, priority models.ReminderPriority, title, message string) models.TaxReminder {
		dueCopy := due
		return models.TaxReminder{
			ID:        uuid.NewString(),
			Type:      kind,
			Title:     title,
			Message:   message,
			DueDate:   &dueCopy,
			Priority:  priority,
			CreatedAt: now,
		}
	}

	deadlineNear := !overdue && days <= prefs.ReminderDaysBefore
	switch {
	case overdue:
		reminders = append(reminders, newReminder(models.ReminderFilingDue, models.PriorityHigh,
			"VAT return overdue",
			fmt.Sprintf("The VAT return for %s was due on %s and is %s.", period, due.Format("2 January 2006"), Deadline{DaysRemaining: days, Overdue: true}.Describe())))
	case deadlineNear:
		priority := models.PriorityMedium
		if days <= 1 {
			priority = models.PriorityHigh
		}
		reminders = append(reminders, newReminder(models.ReminderFilingDue, priority,
			"VAT return due soon",
			fmt.Sprintf("The VAT return for %s is due on %s (%s).", period, due.Format("2 January 2006"), Deadline{DaysRemaining: days}.Describe())))
	}

	if (overdue || deadlineNear) && summary.VATReturn.NetVATPayable.IsPositive() {
		priority := models.PriorityMedium
		if overdue {
			priority = models.PriorityHigh
		}
		reminders = append(reminders, newReminder(models.ReminderPaymentDue, priority,
			"VAT payment due",
			fmt.Sprintf("%s %s of VAT is payable for %s.", models.CurrencyCode, summary.VATReturn.NetVATPayable.StringFixed(2), period)))
	}

	if summary.MissingReceipts > 0 {
		priority := models.PriorityLow
		if summary.MissingReceipts*2 > summary.TransactionCount {
			priority = models.PriorityMedium
		}
		reminder := newReminder(models.ReminderMissingReceipt, priority,
			"Missing receipts",
			fmt.Sprintf("%d of %d transactions in %s have no receipt attached.", summary.MissingReceipts, summary.TransactionCount, period))
		reminder.DueDate = nil
		reminders = append(reminders, reminder)
	}

	c.logger.Debug("Derived reminders",
		logging.F(logging.FieldPeriod, summary.Period.Key()),
		logging.F(logging.FieldCount, len(reminders)))

	return reminders
}
