package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "DB/Penn World Table.csv", cfg.Sources.PennTable)
	assert.Equal(t, "DB/CPI.csv", cfg.Sources.CPI)
	assert.Equal(t, "DB/Unemployment.csv", cfg.Sources.Unemployment)
	assert.Equal(t, "DB/Long-Term Interest Rates.csv", cfg.Sources.BondYields)
	assert.Equal(t, "charts", cfg.Chart.OutDir)
	assert.Equal(t, 12.0, cfg.Chart.WidthInches)
	assert.Equal(t, 6.0, cfg.Chart.HeightInches)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MACROPLOT_SOURCES_CPI", "data/cpi.xlsx")
	t.Setenv("MACROPLOT_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/cpi.xlsx", cfg.Sources.CPI)
	assert.Equal(t, "debug", cfg.LogLevel)
}
