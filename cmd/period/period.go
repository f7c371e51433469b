// Package period handles the tax period command
package period

import (
	"fjacquet/ngtax/cmd/common"
	"fjacquet/ngtax/cmd/root"
	"fjacquet/ngtax/internal/models"

	"github.com/spf13/cobra"
)

// Date is the timestamp whose period is resolved
var Date string

// Cmd represents the period command
var Cmd = &cobra.Command{
	Use:   "period",
	Short: "Show the monthly tax period enclosing a date",
	Long: `Show the monthly tax period (year, month, quarter, start and end) enclosing
--date, the period named by --period, or the current month.`,
	RunE: periodFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Date, "date", "d", "", "Date or timestamp to resolve (e.g. 2026-03-15)")
}

func periodFunc(cmd *cobra.Command, args []string) error {
	c, err := common.RequireContainer(root.AppContainer)
	if err != nil {
		return err
	}

	var info models.TaxPeriodInfo
	if Date != "" {
		info, err = common.ResolveDate(Date)
	} else {
		info, err = common.ResolvePeriod(c.GetCalculator(), root.SharedFlags.Period)
	}
	if err != nil {
		return err
	}

	return common.Render(c, root.SharedFlags.Output, root.SharedFlags.Format, info)
}
