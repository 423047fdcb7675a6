package model

import "time"

type Indicator string

const (
	IndicatorGDP          Indicator = "gdp"
	IndicatorGDPPerCapita Indicator = "gdp_per_capita"
	IndicatorInflation    Indicator = "inflation"
	IndicatorUnemployment Indicator = "unemployment"
	IndicatorBondYields   Indicator = "bond_yields"
)

// Indicators returns every known indicator in menu order.
func Indicators() []Indicator {
	return []Indicator{
		IndicatorGDP,
		IndicatorGDPPerCapita,
		IndicatorInflation,
		IndicatorUnemployment,
		IndicatorBondYields,
	}
}

type Point struct {
	Date  time.Time
	Value float64
}

type Series struct {
	Label  string
	Points []Point
}

func (s Series) Len() int {
	return len(s.Points)
}

// EULabel is the canonical display name for the synthetic EU aggregate.
const EULabel = "European Union"

// EUCountries is the fixed member set behind the EU aggregate. The order
// is the load order during aggregation; changing the set is a deployment
// change, not a runtime one.
var EUCountries = []string{
	"Austria", "Belgium", "Bulgaria", "Croatia", "Cyprus", "Czechia",
	"Denmark", "Estonia", "Finland", "France", "Germany", "Greece",
	"Hungary", "Ireland", "Italy", "Latvia", "Lithuania", "Luxembourg",
	"Malta", "Netherlands", "Poland", "Portugal", "Romania", "Slovakia",
	"Slovenia", "Spain", "Sweden",
}
