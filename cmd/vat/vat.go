// Package vat handles the VAT return command
package vat

import (
	"fjacquet/ngtax/cmd/common"
	"fjacquet/ngtax/cmd/root"
	"fjacquet/ngtax/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the vat command
var Cmd = &cobra.Command{
	Use:   "vat",
	Short: "Compute the VAT return of a period",
	Long: `Compute the VAT return of a period: sales and purchases tagged vat_sale,
VAT collected and deductible at the configured rate, the net amount payable
and the filing due date.`,
	RunE: vatFunc,
}

func vatFunc(cmd *cobra.Command, args []string) error {
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

	ret, err := c.GetCalculator().ComputeVATReturn(snap.Transactions, period)
	if err != nil {
		return err
	}
	root.Log.Debug("VAT return ready",
		logging.F(logging.FieldPeriod, period.Key()),
		logging.F(logging.FieldStatus, string(ret.Status)))

	return common.Render(c, root.SharedFlags.Output, root.SharedFlags.Format, ret)
}
