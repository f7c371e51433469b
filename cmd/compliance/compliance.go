// Package compliance handles the compliance score command
package compliance

import (
	"fjacquet/ngtax/cmd/common"
	"fjacquet/ngtax/cmd/root"
	"fjacquet/ngtax/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the compliance command
var Cmd = &cobra.Command{
	Use:   "compliance",
	Short: "Compute the 0-100 compliance score",
	Long: `Compute the compliance score: 40% on-time filings, 30% receipt coverage and
30% categorized transactions, over all filings and transactions in the snapshot.`,
	RunE: complianceFunc,
}

func complianceFunc(cmd *cobra.Command, args []string) error {
	c, err := common.RequireContainer(root.AppContainer)
	if err != nil {
		return err
	}

	snap, err := common.LoadSnapshot(c)
	if err != nil {
		return err
	}

	score := c.GetCalculator().ComplianceBreakdown(snap.Filings, snap.Transactions)
	root.Log.Info("Compliance score computed", logging.F(logging.FieldScore, score.Score))

	return common.Render(c, root.SharedFlags.Output, root.SharedFlags.Format, score)
}
