// Package categorize handles transaction categorization commands
package categorize

import (
	"context"
	"fmt"
	"time"

	"fjacquet/ngtax/cmd/common"
	"fjacquet/ngtax/cmd/root"
	"fjacquet/ngtax/internal/logging"
	"fjacquet/ngtax/internal/store"

	"github.com/spf13/cobra"
)

// Save writes the categorized transactions back to the transactions CSV
var Save bool

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Suggest tax categories for uncategorized transactions",
	Long: `Suggest tax categories for uncategorized transactions using counterparty
history, keyword rules and, when ai.enabled is set, the Gemini model.`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&Save, "save", "s", false, "Write the categorized transactions back to the transactions file")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	c, err := common.RequireContainer(root.AppContainer)
	if err != nil {
		return err
	}
	if Save && root.SharedFlags.Demo {
		return fmt.Errorf("--save cannot be used with --demo")
	}

	snap, err := common.LoadSnapshot(c)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	result, err := c.GetCategorizer().CategorizeAll(ctx, snap.Transactions)
	if err != nil {
		return err
	}
	root.Log.Debug("Categorization finished",
		logging.F(logging.FieldCount, len(result.Suggestions)),
		logging.F("elapsed", common.Elapsed(start)))

	if Save {
		path := c.GetStore().TransactionsFile
		if err := store.SaveTransactions(path, result.Transactions); err != nil {
			return err
		}
		root.Log.Info("Categorized transactions saved", logging.F(logging.FieldOutputFile, path))
	}

	return common.Render(c, root.SharedFlags.Output, root.SharedFlags.Format, result)
}
