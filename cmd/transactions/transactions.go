// Package transactions handles the categorized transactions command
package transactions

import (
	"fjacquet/ngtax/cmd/common"
	"fjacquet/ngtax/cmd/root"
	"fjacquet/ngtax/internal/logging"
	"fjacquet/ngtax/internal/taxcalc"

	"github.com/spf13/cobra"
)

// Cmd represents the transactions command
var Cmd = &cobra.Command{
	Use:   "transactions",
	Short: "List a period's transactions grouped by tax category",
	Long: `List the transactions of a period grouped into taxable income, VAT sales,
deductible expenses, non-taxable and uncategorized buckets.`,
	RunE: transactionsFunc,
}

func transactionsFunc(cmd *cobra.Command, args []string) error {
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

	buckets := taxcalc.Categorize(taxcalc.SelectInPeriod(snap.Transactions, period))
	root.Log.Debug("Transactions grouped",
		logging.F(logging.FieldPeriod, period.Key()),
		logging.F(logging.FieldCount, buckets.Len()))

	return common.Render(c, root.SharedFlags.Output, root.SharedFlags.Format, buckets)
}
