// Package deadline handles the VAT deadline command
package deadline

import (
	"fjacquet/ngtax/cmd/common"
	"fjacquet/ngtax/cmd/root"
	"fjacquet/ngtax/internal/dateutils"
	"fjacquet/ngtax/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the deadline command
var Cmd = &cobra.Command{
	Use:   "deadline",
	Short: "Show the VAT filing deadline of a period",
	Long: `Show the VAT filing deadline of a period: the due date on the filing day of
the following month, the days remaining and whether it is overdue.`,
	RunE: deadlineFunc,
}

func deadlineFunc(cmd *cobra.Command, args []string) error {
	c, err := common.RequireContainer(root.AppContainer)
	if err != nil {
		return err
	}

	period, err := common.ResolvePeriod(c.GetCalculator(), root.SharedFlags.Period)
	if err != nil {
		return err
	}

	deadline, err := c.GetCalculator().NextDeadline(period)
	if err != nil {
		return err
	}
	root.Log.Info("VAT deadline",
		logging.F(logging.FieldPeriod, period.String()),
		logging.F(logging.FieldDueDate, dateutils.ToLongDate(deadline.DueDate)),
		logging.F(logging.FieldStatus, deadline.Describe()))

	return common.Render(c, root.SharedFlags.Output, root.SharedFlags.Format, deadline)
}
