// Package reminders handles the tax reminders command
package reminders

import (
	"fjacquet/ngtax/cmd/common"
	"fjacquet/ngtax/cmd/root"
	"fjacquet/ngtax/internal/container"

	"github.com/spf13/cobra"
)

// DaysBefore overrides reminders.days_before when positive
var DaysBefore int

// Cmd represents the reminders command
var Cmd = &cobra.Command{
	Use:   "reminders",
	Short: "List filing, payment and receipt reminders for a period",
	Long: `List the reminders derived from the period's summary: the VAT filing and
payment deadlines once they are within the lead time, and missing receipts.`,
	RunE: remindersFunc,
}

func init() {
	Cmd.Flags().IntVar(&DaysBefore, "days-before", 0, "Reminder lead time in days (default: reminders.days_before)")
}

func remindersFunc(cmd *cobra.Command, args []string) error {
	c, err := common.RequireContainer(root.AppContainer)
	if err != nil {
		return err
	}

	period, err := common.ResolvePeriod(c.GetCalculator(), root.SharedFlags.Period)
	if err != nil {
		return err
	}
	snap, err := common.LoadSnapshot(c)
	if err != nil {
		return err
	}

	summary, err := c.GetCalculator().ComputeMonthlySummary(snap.Transactions, period, snap.Business)
	if err != nil {
		return err
	}

	prefs := container.ReminderPreferences(c.GetConfig())
	if DaysBefore > 0 {
		prefs.ReminderDaysBefore = DaysBefore
	}

	return common.Render(c, root.SharedFlags.Output, root.SharedFlags.Format, c.GetCalculator().Reminders(summary, prefs))
}
