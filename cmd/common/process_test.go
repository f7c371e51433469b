package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/ngtax/internal/clock"
	"fjacquet/ngtax/internal/config"
	"fjacquet/ngtax/internal/container"
	"fjacquet/ngtax/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDemoContainer(t *testing.T) *container.Container {
	t.Helper()
	fixed := clock.NewFixed(time.Date(2026, time.March, 20, 12, 0, 0, 0, time.UTC))
	c, err := container.NewContainer(config.Default(),
		container.WithDemo(true),
		container.WithClock(fixed),
		container.WithLogger(&logging.MockLogger{}))
	require.NoError(t, err)
	return c
}

func TestRequireContainer(t *testing.T) {
	_, err := RequireContainer(nil)
	assert.Error(t, err)

	c := newDemoContainer(t)
	got, err := RequireContainer(c)
	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestResolvePeriod(t *testing.T) {
	calc := newDemoContainer(t).GetCalculator()

	current, err := ResolvePeriod(calc, "")
	require.NoError(t, err)
	assert.Equal(t, "2026-03", current.Key())

	named, err := ResolvePeriod(calc, "2025-12")
	require.NoError(t, err)
	assert.Equal(t, 4, named.Quarter)
	assert.Equal(t, time.Date(2025, time.December, 31, 23, 59, 59, 999_000_000, time.UTC), named.EndDate)

	_, err = ResolvePeriod(calc, "2025-13")
	assert.Error(t, err)
}

func TestResolveDate(t *testing.T) {
	p, err := ResolveDate("2026-02-28T23:59:59Z")
	require.NoError(t, err)
	assert.Equal(t, "2026-02", p.Key())

	_, err = ResolveDate("yesterday")
	assert.Error(t, err)
}

func TestLoadSnapshot(t *testing.T) {
	snap, err := LoadSnapshot(newDemoContainer(t))
	require.NoError(t, err)
	assert.Len(t, snap.Transactions, 7)

	cfg := config.Default()
	cfg.Data.Directory = t.TempDir()
	c, err := container.NewContainer(cfg, container.WithLogger(&logging.MockLogger{}))
	require.NoError(t, err)
	_, err = LoadSnapshot(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ngtax seed")
}

func TestRender(t *testing.T) {
	c := newDemoContainer(t)
	period, err := ResolvePeriod(c.GetCalculator(), "")
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "period.yaml")
	require.NoError(t, Render(c, out, "yaml", period))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "month: 3")

	out = filepath.Join(t.TempDir(), "period.json")
	require.NoError(t, Render(c, out, "", period))
	data, err = os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"quarter": 1`)

	assert.Error(t, Render(c, out, "xml", period))
}

func TestElapsed(t *testing.T) {
	assert.NotEmpty(t, Elapsed(time.Now()))
}
