package compliance

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

func TestComplianceCommand(t *testing.T) {
	out := setupDemo(t, "json")

	require.NoError(t, Cmd.RunE(Cmd, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var score models.ComplianceScore
	require.NoError(t, json.Unmarshal(data, &score))

	assert.Equal(t, 79, score.Score)
	assert.InDelta(t, 100.0, score.FilingOnTime, 0.001)
	assert.InDelta(t, 300.0/7.0, score.ReceiptCoverage, 0.001)
	assert.InDelta(t, 600.0/7.0, score.CategorizationComplete, 0.001)
}
