package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the plotter reads from the environment, under
// the MACROPLOT prefix.
type Config struct {
	Sources  SourcesConfig `envconfig:"SOURCES"`
	Chart    ChartConfig   `envconfig:"CHART"`
	LogLevel string        `envconfig:"LOG_LEVEL" default:"info"`
}

// SourcesConfig points at the tabular source files. CSV and XLSX are both
// accepted; the extension decides the reader.
type SourcesConfig struct {
	PennTable    string `envconfig:"PENN_TABLE" default:"DB/Penn World Table.csv"`
	CPI          string `envconfig:"CPI" default:"DB/CPI.csv"`
	Unemployment string `envconfig:"UNEMPLOYMENT" default:"DB/Unemployment.csv"`
	BondYields   string `envconfig:"BOND_YIELDS" default:"DB/Long-Term Interest Rates.csv"`
}

type ChartConfig struct {
	OutDir       string  `envconfig:"OUT_DIR" default:"charts"`
	WidthInches  float64 `envconfig:"WIDTH_INCHES" default:"12"`
	HeightInches float64 `envconfig:"HEIGHT_INCHES" default:"6"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("MACROPLOT", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
