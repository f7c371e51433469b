package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/ngtax/cmd/categorize"
	"fjacquet/ngtax/cmd/compliance"
	"fjacquet/ngtax/cmd/deadline"
	"fjacquet/ngtax/cmd/period"
	"fjacquet/ngtax/cmd/reminders"
	"fjacquet/ngtax/cmd/root"
	"fjacquet/ngtax/cmd/seed"
	"fjacquet/ngtax/cmd/summary"
	"fjacquet/ngtax/cmd/transactions"
	"fjacquet/ngtax/cmd/vat"

	"github.com/joho/godotenv"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Initialize root command (reads LOG_LEVEL for the bootstrap logger)
	root.Init()

	// 3. Add all subcommands
	root.Cmd.AddCommand(period.Cmd)
	root.Cmd.AddCommand(vat.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(deadline.Cmd)
	root.Cmd.AddCommand(compliance.Cmd)
	root.Cmd.AddCommand(reminders.Cmd)
	root.Cmd.AddCommand(transactions.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(seed.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	// Try to find .env file in current directory
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// Try to find .env in parent directory (project root)
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
