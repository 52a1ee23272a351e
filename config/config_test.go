package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotientgraph/pact/config"
)

func TestLoadFromReader_Defaults(t *testing.T) {
	cfg, err := config.LoadFromReader("yaml", []byte(""))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Decomposition.HTDAttempts)
	assert.True(t, cfg.Decomposition.RefineCovers)
	assert.True(t, cfg.Execution.GracefulBigint)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadFromReader_Overrides(t *testing.T) {
	yaml := []byte(`
decomposition:
  htd_attempts: 4
  solver_timeout_ms: 5000
execution:
  slice_count: 8
log:
  format: json
`)
	cfg, err := config.LoadFromReader("yaml", yaml)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Decomposition.HTDAttempts)
	assert.Equal(t, 8, cfg.Execution.SliceCount)
	assert.Equal(t, "json", cfg.Log.Format)

	dc := cfg.DecompConfig()
	assert.Equal(t, 4, dc.HTDAttempts)
}

func TestValidate_RejectsBadLogFormat(t *testing.T) {
	_, err := config.LoadFromReader("yaml", []byte("log:\n  format: xml\n"))
	assert.Error(t, err)
}

func TestValidate_RejectsZeroAttempts(t *testing.T) {
	_, err := config.LoadFromReader("yaml", []byte("decomposition:\n  htd_attempts: 0\n"))
	assert.Error(t, err)
}
