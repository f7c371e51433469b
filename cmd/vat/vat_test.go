package vat

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/ngtax/cmd/root"
	"fjacquet/ngtax/internal/clock"
	"fjacquet/ngtax/internal/config"
	"fjacquet/ngtax/internal/container"
	"fjacquet/ngtax/internal/logging"
	"fjacquet/ngtax/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDemo(t *testing.T, format string) string {
	t.Helper()
	fixed := clock.NewFixed(time.Date(2026, time.March, 20, 12, 0, 0, 0, time.UTC))
	c, err := container.NewContainer(config.Default(),
		container.WithDemo(true),
		container.WithClock(fixed),
		container.WithLogger(&logging.MockLogger{}))
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out."+format)
	root.AppContainer = c
	root.SharedFlags = root.CommonFlags{Demo: true, Output: out, Format: format}
	t.Cleanup(func() {
		root.AppContainer = nil
		root.SharedFlags = root.CommonFlags{}
	})
	return out
}

func TestVATCommand_Metadata(t *testing.T) {
	assert.Equal(t, "vat", Cmd.Use)
	assert.NotNil(t, Cmd.RunE)
}

func TestVATCommand_Demo(t *testing.T) {
	out := setupDemo(t, "json")

	require.NoError(t, Cmd.RunE(Cmd, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var ret models.VATReturn
	require.NoError(t, json.Unmarshal(data, &ret))

	assert.Equal(t, "vat-2026-3", ret.ID)
	assert.True(t, ret.TotalSales.Equal(decimal.NewFromInt(2500000)))
	assert.True(t, ret.VATCollected.Equal(decimal.NewFromInt(187500)))
	assert.True(t, ret.VATDeductible.Equal(decimal.RequireFromString("9037.5")))
	assert.True(t, ret.NetVATPayable.Equal(decimal.RequireFromString("178462.5")))
	assert.Equal(t, models.StatusPending, ret.Status)
	assert.Equal(t, "2026-04-21", ret.DueDate.Format("2006-01-02"))
}

func TestVATCommand_InvalidPeriod(t *testing.T) {
	setupDemo(t, "json")
	root.SharedFlags.Period = "2026-00"
	assert.Error(t, Cmd.RunE(Cmd, nil))
}

func TestVATCommand_NoContainer(t *testing.T) {
	root.AppContainer = nil
	assert.Error(t, Cmd.RunE(Cmd, nil))
}
