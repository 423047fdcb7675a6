// Package cpi loads year-on-year inflation series from a CPI export with
// one observation row per (reference area, year).
package cpi

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
	defaultPath = "DB/CPI.csv"

	columnArea   = "Reference area"
	columnPeriod = "TIME_PERIOD"
	columnValue  = "OBS_VALUE"
)

type Config struct {
	Path string
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
	return &Source{config: cfg}
}

// Inflation returns the inflation series for one reference area, sorted
// ascending by date. TIME_PERIOD is a plain calendar year in this source;
// rows with an unparsable year or value are dropped.
func (s *Source) Inflation(ctx context.Context, area string) (model.Series, error) {
	if err := ctx.Err(); err != nil {
		return model.Series{}, err
	}

	table, err := tabular.Read(s.config.Path)
	if err != nil {
		return model.Series{}, err
	}

	points := make([]model.Point, 0)
	for _, row := range table.Rows() {
		if table.Cell(row, columnArea) != area {
			continue
		}
		year, ok := tabular.ParseYear(table.Cell(row, columnPeriod))
		if !ok {
			continue
		}
		value, ok := tabular.ParseFloat(table.Cell(row, columnValue))
		if !ok {
			continue
		}
		points = append(points, model.Point{
			Date:  time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			Value: value,
		})
	}
	if len(points) == 0 {
		return model.Series{}, fmt.Errorf("cpi: inflation for %q: %w", area, sources.ErrNoRows)
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return model.Series{Label: area, Points: points}, nil
}
