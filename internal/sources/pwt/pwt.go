// Package pwt loads GDP and population series from a Penn World Table
// style export: one row per (country, variable), one column per year.
package pwt

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"macroplot/internal/model"
	"macroplot/internal/sources"
	"macroplot/internal/tabular"
)

const (
	defaultPath           = "DB/Penn World Table.csv"
	defaultGDPCode        = "rgdpo"
	defaultPopulationCode = "pop"

	columnCountry  = "Country"
	columnVariable = "Variable code"
)

type Config struct {
	Path           string
	GDPCode        string
	PopulationCode string
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
	if strings.TrimSpace(cfg.GDPCode) == "" {
		cfg.GDPCode = defaultGDPCode
	}
	if strings.TrimSpace(cfg.PopulationCode) == "" {
		cfg.PopulationCode = defaultPopulationCode
	}
	return &Source{config: cfg}
}

// GDP returns the real GDP series for one country, melted from the year
// columns. Unparsable values are dropped row by row.
func (s *Source) GDP(ctx context.Context, area string) (model.Series, error) {
	if err := ctx.Err(); err != nil {
		return model.Series{}, err
	}

	table, err := tabular.Read(s.config.Path)
	if err != nil {
		return model.Series{}, err
	}

	points := meltVariable(table, area, s.config.GDPCode)
	if len(points) == 0 {
		return model.Series{}, fmt.Errorf("pwt: gdp for %q: %w", area, sources.ErrNoRows)
	}
	return model.Series{Label: area, Points: points}, nil
}

// GDPPerCapita divides the GDP series by the population series year by
// year. Years missing either side, or with a zero or otherwise non-finite
// ratio, produce no row.
func (s *Source) GDPPerCapita(ctx context.Context, area string) (model.Series, error) {
	if err := ctx.Err(); err != nil {
		return model.Series{}, err
	}

	table, err := tabular.Read(s.config.Path)
	if err != nil {
		return model.Series{}, err
	}

	gdp := meltVariable(table, area, s.config.GDPCode)
	population := meltVariable(table, area, s.config.PopulationCode)

	byYear := make(map[time.Time]float64, len(population))
	for _, point := range population {
		byYear[point.Date] = point.Value
	}

	points := make([]model.Point, 0, len(gdp))
	for _, point := range gdp {
		pop, ok := byYear[point.Date]
		if !ok {
			continue
		}
		ratio := point.Value / pop
		if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
			continue
		}
		points = append(points, model.Point{Date: point.Date, Value: ratio})
	}
	if len(points) == 0 {
		return model.Series{}, fmt.Errorf("pwt: gdp per capita for %q: %w", area, sources.ErrNoRows)
	}
	return model.Series{Label: area, Points: points}, nil
}

// meltVariable reshapes the matching wide rows into (year, value) points,
// keeping the file's column order.
func meltVariable(table *tabular.Table, area, code string) []model.Point {
	yearColumns := make([]string, 0)
	for _, column := range table.Columns() {
		if tabular.IsDigits(column) {
			yearColumns = append(yearColumns, column)
		}
	}

	points := make([]model.Point, 0)
	for _, row := range table.Rows() {
		if table.Cell(row, columnCountry) != area {
			continue
		}
		if table.Cell(row, columnVariable) != code {
			continue
		}
		for _, column := range yearColumns {
			year, ok := tabular.ParseYear(column)
			if !ok {
				continue
			}
			value, ok := tabular.ParseFloat(table.Cell(row, column))
			if !ok {
				continue
			}
			points = append(points, model.Point{
				Date:  time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
				Value: value,
			})
		}
	}
	return points
}
