package econ

import (
	"context"

	"macroplot/internal/model"
)

// Country holds one entity's display name and at most one cached series
// per indicator. Instances are not safe for concurrent use; the workflow
// builds one per requested name and uses it sequentially.
type Country struct {
	Name string

	catalog *Catalog
	series  map[model.Indicator]model.Series
}

func NewCountry(name string, catalog *Catalog) *Country {
	return &Country{
		Name:    name,
		catalog: catalog,
		series:  make(map[model.Indicator]model.Series),
	}
}

// Load recomputes the indicator's series from source, overwrites the
// cache slot, and rebinds the display name to the label the loader
// reported. For the EU aggregate that is the canonical label, except bond
// yields where the source's euro-area alias sticks.
func (c *Country) Load(ctx context.Context, indicator model.Indicator) (model.Series, error) {
	series, err := c.catalog.Load(ctx, indicator, c.Name)
	if err != nil {
		return model.Series{}, err
	}
	c.series[indicator] = series
	if series.Label != "" {
		c.Name = series.Label
	}
	return series, nil
}

// Ensure returns the cached series for the indicator, loading it first
// when the slot is empty. This is the lazy render path; the cache is
// never invalidated within a process run.
func (c *Country) Ensure(ctx context.Context, indicator model.Indicator) (model.Series, error) {
	if series, ok := c.series[indicator]; ok {
		return series, nil
	}
	return c.Load(ctx, indicator)
}

// Series returns the cached slot without loading.
func (c *Country) Series(indicator model.Indicator) (model.Series, bool) {
	series, ok := c.series[indicator]
	return series, ok
}
