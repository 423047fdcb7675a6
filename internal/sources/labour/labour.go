// Package labour derives unemployment-rate series from a labour force
// survey export in long form: one row per (area, period, status), where
// status distinguishes the labour force count from the employed count.
package labour

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
	defaultPath            = "DB/Unemployment.csv"
	defaultStructureMarker = "DATAFLOW"
	defaultTotalAge        = "_T"
	defaultLabourForceCode = "LF"
	defaultEmployedCode    = "EMP"

	// EUArea is the label this source publishes its own pre-aggregated
	// union-wide figures under.
	EUArea = "European Union (27 countries)"

	columnStructure = "STRUCTURE"
	columnAge       = "AGE"
	columnArea      = "Reference area"
	columnStatus    = "LABOUR_FORCE_STATUS"
	columnPeriod    = "TIME_PERIOD"
	columnValue     = "OBS_VALUE"
)

type Config struct {
	Path            string
	StructureMarker string
	TotalAge        string
	LabourForceCode string
	EmployedCode    string
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
	if strings.TrimSpace(cfg.TotalAge) == "" {
		cfg.TotalAge = defaultTotalAge
	}
	if strings.TrimSpace(cfg.LabourForceCode) == "" {
		cfg.LabourForceCode = defaultLabourForceCode
	}
	if strings.TrimSpace(cfg.EmployedCode) == "" {
		cfg.EmployedCode = defaultEmployedCode
	}
	return &Source{config: cfg}
}

type periodCounts struct {
	labourForce float64
	employed    float64
	hasLF       bool
	hasEMP      bool
}

// Unemployment returns the unemployment-rate series for one reference
// area: rate = (labour force - employed) / labour force * 100. Periods
// missing either component produce no row. Duplicate status rows for the
// same period are summed.
func (s *Source) Unemployment(ctx context.Context, area string) (model.Series, error) {
	if err := ctx.Err(); err != nil {
		return model.Series{}, err
	}

	table, err := tabular.Read(s.config.Path)
	if err != nil {
		return model.Series{}, err
	}

	byYear := make(map[int]*periodCounts)
	matched := false
	for _, row := range table.Rows() {
		if table.Cell(row, columnStructure) != s.config.StructureMarker {
			continue
		}
		if table.Cell(row, columnAge) != s.config.TotalAge {
			continue
		}
		if table.Cell(row, columnArea) != area {
			continue
		}
		matched = true

		year, ok := tabular.ParseYear(table.Cell(row, columnPeriod))
		if !ok {
			continue
		}
		value, ok := tabular.ParseFloat(table.Cell(row, columnValue))
		if !ok {
			continue
		}

		counts := byYear[year]
		if counts == nil {
			counts = &periodCounts{}
			byYear[year] = counts
		}
		switch table.Cell(row, columnStatus) {
		case s.config.LabourForceCode:
			counts.labourForce += value
			counts.hasLF = true
		case s.config.EmployedCode:
			counts.employed += value
			counts.hasEMP = true
		}
	}
	if !matched {
		return model.Series{}, fmt.Errorf("labour: unemployment for %q: %w", area, sources.ErrNoRows)
	}

	points := make([]model.Point, 0, len(byYear))
	for year, counts := range byYear {
		if !counts.hasLF || !counts.hasEMP || counts.labourForce == 0 {
			continue
		}
		rate := (counts.labourForce - counts.employed) / counts.labourForce * 100
		points = append(points, model.Point{
			Date:  time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			Value: rate,
		})
	}
	if len(points) == 0 {
		return model.Series{}, fmt.Errorf("labour: unemployment for %q: %w", area, sources.ErrNoRows)
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return model.Series{Label: area, Points: points}, nil
}
