// Package seed handles the demo data command
package seed

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/ngtax/cmd/common"
	"fjacquet/ngtax/cmd/root"
	"fjacquet/ngtax/internal/categorizer"
	"fjacquet/ngtax/internal/logging"
	demo "fjacquet/ngtax/internal/seed"
	"fjacquet/ngtax/internal/store"

	"github.com/spf13/cobra"
)

var (
	// Dir is the directory the demo files are written to
	Dir string
	// Force overwrites existing files
	Force bool
)

// Cmd represents the seed command
var Cmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the demo snapshot as data files",
	Long: `Write the demo transactions, filings, business profile and the built-in
category rules as data files, dated relative to the current clock.`,
	RunE: seedFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Dir, "dir", "d", ".", "Directory to write the data files to")
	Cmd.Flags().BoolVar(&Force, "force", false, "Overwrite existing files")
}

func seedFunc(cmd *cobra.Command, args []string) error {
	c, err := common.RequireContainer(root.AppContainer)
	if err != nil {
		return err
	}
	cfg := c.GetConfig()

	snap, err := demo.NewDemoProvider(c.GetClock(), cfg.Tax.VATFilingDay).Snapshot()
	if err != nil {
		return err
	}

	files := []struct {
		name  string
		write func(string) error
	}{
		{cfg.Data.Transactions, func(path string) error { return store.SaveTransactions(path, snap.Transactions) }},
		{cfg.Data.Filings, func(path string) error { return store.SaveFilings(path, snap.Filings) }},
		{cfg.Data.Business, func(path string) error { return store.SaveBusiness(path, snap.Business) }},
		{cfg.Data.Rules, func(path string) error { return store.SaveRules(path, categorizer.DefaultRules()) }},
	}

	// Check every target before writing any of them
	var paths []string
	for _, f := range files {
		path := ""
		if f.name != "" {
			path = filepath.Join(Dir, filepath.Base(f.name))
			if _, err := os.Stat(path); err == nil && !Force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
		}
		paths = append(paths, path)
	}

	for i, f := range files {
		if paths[i] == "" {
			continue
		}
		if err := f.write(paths[i]); err != nil {
			return err
		}
		root.Log.Info("Demo data written", logging.F(logging.FieldOutputFile, paths[i]))
	}
	return nil
}
