// Package summary handles the monthly tax summary command
package summary

import (
	"fjacquet/ngtax/cmd/common"
	"fjacquet/ngtax/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Compute the monthly tax summary of a period",
	Long: `Compute the monthly tax summary of a period: income, expenses, net income,
the VAT return, the estimated company income tax and receipt counts. The
business profile decides whether company income tax applies.`,
	RunE: summaryFunc,
}

func summaryFunc(cmd *cobra.Command, args []string) error {
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
	return common.Render(c, root.SharedFlags.Output, root.SharedFlags.Format, summary)
}
