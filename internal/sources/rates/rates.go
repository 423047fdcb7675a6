// Package rates loads long-term government bond yield series. The time
// column mixes year-month and year-only periods, and the EU aggregate is
// published under a euro-area label instead of the canonical one.
package rates

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"macroplot/internal/model"
	"macroplot/internal/sources"
	"macroplot/internal/tabular"
)

const (
	defaultPath            = "DB/Long-Term Interest Rates.csv"
	defaultStructureMarker = "DATAFLOW"

	// EuroAreaAlias is the label this source uses for the EU aggregate.
	// Series loaded for the canonical aggregate label keep this alias as
	// their display label.
	EuroAreaAlias = "Euro area (19 countries)"

	// Yields outside this band are treated as data errors, not extremes.
	minYield = -5
	maxYield = 50

	columnStructure = "STRUCTURE"
	columnArea      = "Reference area"
	columnPeriod    = "TIME_PERIOD"
	columnValue     = "OBS_VALUE"
)

type Config struct {
	Path            string
	StructureMarker string
}

type Source struct {
	config Config
}

func New() *Source {
	return NewWithConfig(Config{})
}

func NewWithConfig(cfg Config) *Source {
	if strings.TrimSpace(cfg.Path) == "" {
		cfg.Path = defaultPath
	}
	if strings.TrimSpace(cfg.StructureMarker) == "" {
		cfg.StructureMarker = defaultStructureMarker
	}
	return &Source{config: cfg}
}

// BondYields returns the long-term bond yield series for one reference
// area. Periods parse as year-month first, year-only as a fallback.
// Values outside [-5, 50] are dropped, duplicate dates keep the first
// occurrence, and the result is sorted ascending.
func (s *Source) BondYields(ctx context.Context, area string) (model.Series, error) {
	if err := ctx.Err(); err != nil {
		return model.Series{}, err
	}

	label := area
	if area == model.EULabel {
		label = EuroAreaAlias
		area = EuroAreaAlias
	}

	table, err := tabular.Read(s.config.Path)
	if err != nil {
		return model.Series{}, err
	}

	seen := make(map[time.Time]struct{})
	points := make([]model.Point, 0)
	for _, row := range table.Rows() {
		if table.Cell(row, columnStructure) != s.config.StructureMarker {
			continue
		}
		if table.Cell(row, columnArea) != area {
			continue
		}

		date, ok := parsePeriod(table.Cell(row, columnPeriod))
		if !ok {
			continue
		}
		value, ok := tabular.ParseFloat(table.Cell(row, columnValue))
		if !ok {
			continue
		}
		if value < minYield || value > maxYield {
			continue
		}
		if _, dup := seen[date]; dup {
			continue
		}
		seen[date] = struct{}{}
		points = append(points, model.Point{Date: date, Value: value})
	}
	if len(points) == 0 {
		return model.Series{}, fmt.Errorf("rates: bond yields for %q: %w", area, sources.ErrNoRows)
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return model.Series{Label: label, Points: points}, nil
}

func parsePeriod(value string) (time.Time, bool) {
	if year, month, ok := tabular.ParseYearMonth(value); ok {
		return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), true
	}
	if year, ok := tabular.ParseYear(value); ok {
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
