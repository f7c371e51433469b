package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/ngtax/cmd/root"
	"fjacquet/ngtax/internal/clock"
	"fjacquet/ngtax/internal/config"
	"fjacquet/ngtax/internal/container"
	"fjacquet/ngtax/internal/logging"
	"fjacquet/ngtax/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) string {
	t.Helper()
	fixed := clock.NewFixed(time.Date(2026, time.March, 20, 12, 0, 0, 0, time.UTC))
	c, err := container.NewContainer(config.Default(), container.WithClock(fixed), container.WithLogger(&logging.MockLogger{}))
	require.NoError(t, err)

	root.AppContainer = c
	Dir = t.TempDir()
	t.Cleanup(func() {
		root.AppContainer = nil
		Dir = "."
		Force = false
	})
	return Dir
}

func TestSeedCommand_WritesSnapshot(t *testing.T) {
	dir := setup(t)

	require.NoError(t, Cmd.RunE(Cmd, nil))

	txs, err := store.LoadTransactions(filepath.Join(dir, "transactions.csv"))
	require.NoError(t, err)
	assert.Len(t, txs, 7)

	filings, err := store.LoadFilings(filepath.Join(dir, "filings.yaml"), 21)
	require.NoError(t, err)
	require.Len(t, filings, 2)
	assert.Equal(t, "2026-02", filings[0].Period.Key())

	business, err := store.LoadBusiness(filepath.Join(dir, "business.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "NGTAX Technologies Ltd", business.BusinessName)

	rules, err := store.LoadRules(filepath.Join(dir, "category_rules.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, rules)
}

func TestSeedCommand_RefusesOverwrite(t *testing.T) {
	dir := setup(t)
	existing := filepath.Join(dir, "business.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("business_name: keep\n"), 0600))

	err := Cmd.RunE(Cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, statErr := os.Stat(filepath.Join(dir, "transactions.csv"))
	assert.True(t, os.IsNotExist(statErr), "nothing is written when a target exists")

	Force = true
	require.NoError(t, Cmd.RunE(Cmd, nil))
	business, err := store.LoadBusiness(existing)
	require.NoError(t, err)
	assert.Equal(t, "NGTAX Technologies Ltd", business.BusinessName)
}
