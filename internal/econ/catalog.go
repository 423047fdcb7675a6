// Package econ wires the indicator catalog: one entry per indicator
// binding its loader, its aggregation strategy for the EU label, and its
// chart styling.
package econ

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"macroplot/internal/aggregate"
	"macroplot/internal/config"
	"macroplot/internal/model"
	"macroplot/internal/sources"
	"macroplot/internal/sources/cpi"
	"macroplot/internal/sources/labour"
	"macroplot/internal/sources/pwt"
	"macroplot/internal/sources/rates"
)

const (
	inflationOutlierLow  = -50
	inflationOutlierHigh = 50
)

// Entry describes one indicator end to end.
type Entry struct {
	Indicator model.Indicator
	Display   string
	Title     string
	XLabel    string
	YLabel    string
	// Scale divides raw values for charting (1e6 turns dollars into
	// millions). Zero means unscaled.
	Scale float64

	load      sources.Func
	aggregate func(ctx context.Context) (model.Series, error)
}

type Catalog struct {
	entries map[model.Indicator]Entry
	order   []model.Indicator
}

// NewCatalog builds the catalog from configured source paths. EU members
// and the aggregate label are process constants from the model package.
func NewCatalog(cfg config.SourcesConfig, log zerolog.Logger) *Catalog {
	pennTable := pwt.NewWithConfig(pwt.Config{Path: cfg.PennTable})
	inflation := cpi.NewWithConfig(cpi.Config{Path: cfg.CPI})
	unemployment := labour.NewWithConfig(labour.Config{Path: cfg.Unemployment})
	bondYields := rates.NewWithConfig(rates.Config{Path: cfg.BondYields})

	entries := []Entry{
		{
			Indicator: model.IndicatorGDP,
			Display:   "GDP",
			Title:     "Real GDP Over Time",
			XLabel:    "Date",
			YLabel:    "Real GDP (Million $)",
			Scale:     1e6,
			load:      pennTable.GDP,
			aggregate: func(ctx context.Context) (model.Series, error) {
				return aggregate.FromMembers(ctx, log, model.EULabel, model.EUCountries,
					pennTable.GDP, aggregate.SumByDate)
			},
		},
		{
			Indicator: model.IndicatorGDPPerCapita,
			Display:   "GDP per Capita",
			Title:     "GDP per Capita Over Time",
			XLabel:    "Date",
			YLabel:    "GDP per Capita (Thousand $)",
			Scale:     1e3,
			load:      pennTable.GDPPerCapita,
			aggregate: func(ctx context.Context) (model.Series, error) {
				return aggregate.FromMembers(ctx, log, model.EULabel, model.EUCountries,
					pennTable.GDPPerCapita, aggregate.MeanByDate)
			},
		},
		{
			Indicator: model.IndicatorInflation,
			Display:   "Inflation",
			Title:     "Year-on-Year Inflation",
			XLabel:    "Date",
			YLabel:    "Inflation (% YoY)",
			load:      inflation.Inflation,
			aggregate: func(ctx context.Context) (model.Series, error) {
				return aggregate.FromMembers(ctx, log, model.EULabel, model.EUCountries,
					inflation.Inflation,
					aggregate.MeanWithCoverage(inflationOutlierLow, inflationOutlierHigh))
			},
		},
		{
			Indicator: model.IndicatorUnemployment,
			Display:   "Unemployment",
			Title:     "Unemployment Rate Over Time",
			XLabel:    "Date",
			YLabel:    "Unemployment Rate (%)",
			load:      unemployment.Unemployment,
			aggregate: func(ctx context.Context) (model.Series, error) {
				// The source publishes its own union-wide rows.
				return aggregate.Direct(ctx, labour.EUArea, model.EULabel,
					unemployment.Unemployment)
			},
		},
		{
			Indicator: model.IndicatorBondYields,
			Display:   "Long-Term Bond Yields",
			Title:     "Long-Term Government Bond Yields Over Time",
			XLabel:    "Date",
			YLabel:    "Long-Term Bond Yield (%)",
			load:      bondYields.BondYields,
			aggregate: func(ctx context.Context) (model.Series, error) {
				// The loader substitutes the euro-area alias itself and
				// keeps it as the label. The two labels are not
				// reconciled; see DESIGN.md.
				return aggregate.Direct(ctx, model.EULabel, "", bondYields.BondYields)
			},
		},
	}

	catalog := &Catalog{entries: make(map[model.Indicator]Entry, len(entries))}
	for _, entry := range entries {
		catalog.entries[entry.Indicator] = entry
		catalog.order = append(catalog.order, entry.Indicator)
	}
	return catalog
}

// Entry returns the catalog entry for an indicator.
func (c *Catalog) Entry(indicator model.Indicator) (Entry, bool) {
	entry, ok := c.entries[indicator]
	return entry, ok
}

// Entries returns every entry in menu order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, indicator := range c.order {
		out = append(out, c.entries[indicator])
	}
	return out
}

// Load resolves one area for one indicator, routing the canonical
// aggregate label to that indicator's aggregation strategy.
func (c *Catalog) Load(ctx context.Context, indicator model.Indicator, area string) (model.Series, error) {
	entry, ok := c.entries[indicator]
	if !ok {
		return model.Series{}, fmt.Errorf("econ: unknown indicator %q", indicator)
	}
	if area == model.EULabel {
		return entry.aggregate(ctx)
	}
	return entry.load(ctx, area)
}
