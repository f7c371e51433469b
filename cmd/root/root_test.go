package root_test

import (
	"testing"

	"fjacquet/ngtax/cmd/root"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "ngtax", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "Nigerian VAT returns")
	assert.Contains(t, root.Cmd.Long, "--demo")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRun)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()

	tests := []struct {
		name      string
		shorthand string
	}{
		{"input", "i"},
		{"output", "o"},
		{"format", "f"},
		{"period", "p"},
		{"demo", ""},
	}
	for _, tt := range tests {
		flag := root.Cmd.PersistentFlags().Lookup(tt.name)
		require.NotNil(t, flag, tt.name)
		assert.Equal(t, tt.shorthand, flag.Shorthand, tt.name)
	}
	assert.NotNil(t, root.Log)
}

func TestRootCommand_PostRunWithoutContainer(t *testing.T) {
	root.AppContainer = nil
	assert.NotPanics(t, func() {
		root.Cmd.PersistentPostRun(root.Cmd, nil)
		root.Cmd.Run(root.Cmd, nil)
	})
}
