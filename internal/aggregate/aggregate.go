// Package aggregate combines per-member series into a synthetic region
// series. Member loads are failure-isolated: a member that cannot load is
// logged and skipped, and only a fully empty result is an error.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"macroplot/internal/model"
	"macroplot/internal/sources"
)

// ErrNoData reports that no member of the set produced a usable series.
var ErrNoData = errors.New("aggregate: no member data")

// Combine merges the series collected from members into combined points.
// memberCount is the full member-set size, including members that failed
// to load, so coverage rules see the real denominator.
type Combine func(memberCount int, collected []model.Series) []model.Point

// FromMembers loads every member in order with load, combines the
// successful results, and labels the outcome. Completion is deterministic:
// the combine functions here merge by date, so member order only affects
// warning order.
func FromMembers(ctx context.Context, log zerolog.Logger, label string, members []string, load sources.Func, combine Combine) (model.Series, error) {
	collected := make([]model.Series, 0, len(members))
	for _, member := range members {
		if err := ctx.Err(); err != nil {
			return model.Series{}, err
		}
		series, err := load(ctx, member)
		if err != nil {
			log.Warn().Str("member", member).Err(err).Msg("skipping member")
			continue
		}
		collected = append(collected, series)
	}
	if len(collected) == 0 {
		return model.Series{}, fmt.Errorf("%w (%s, %d members)", ErrNoData, label, len(members))
	}

	return model.Series{Label: label, Points: combine(len(members), collected)}, nil
}

// Direct pulls a pre-aggregated series straight from the source under the
// area label the source publishes it as. This is the second aggregation
// strategy: some sources carry an authoritative union-wide row of their
// own instead of anything recomputable from members.
func Direct(ctx context.Context, sourceArea, label string, load sources.Func) (model.Series, error) {
	series, err := load(ctx, sourceArea)
	if err != nil {
		return model.Series{}, err
	}
	if label != "" {
		series.Label = label
	}
	return series, nil
}

// SumByDate adds member values per date.
func SumByDate(memberCount int, collected []model.Series) []model.Point {
	_ = memberCount
	totals := make(map[time.Time]float64)
	for _, series := range collected {
		for _, point := range series.Points {
			totals[point.Date] += point.Value
		}
	}
	return sortedPoints(totals)
}

// MeanByDate averages member values per date over the members that
// reported one.
func MeanByDate(memberCount int, collected []model.Series) []model.Point {
	_ = memberCount
	totals := make(map[time.Time]float64)
	counts := make(map[time.Time]int)
	for _, series := range collected {
		for _, point := range series.Points {
			totals[point.Date] += point.Value
			counts[point.Date]++
		}
	}

	means := make(map[time.Time]float64, len(totals))
	for date, total := range totals {
		means[date] = total / float64(counts[date])
	}
	return sortedPoints(means)
}

// MeanWithCoverage averages per date like MeanByDate but first discards
// observations outside [lower, upper] and then drops any date where the
// reporting members are not a strict majority of the full member set.
func MeanWithCoverage(lower, upper float64) Combine {
	return func(memberCount int, collected []model.Series) []model.Point {
		totals := make(map[time.Time]float64)
		counts := make(map[time.Time]int)
		for _, series := range collected {
			for _, point := range series.Points {
				if point.Value < lower || point.Value > upper {
					continue
				}
				totals[point.Date] += point.Value
				counts[point.Date]++
			}
		}

		means := make(map[time.Time]float64, len(totals))
		for date, total := range totals {
			if counts[date]*2 <= memberCount {
				continue
			}
			means[date] = total / float64(counts[date])
		}
		return sortedPoints(means)
	}
}

func sortedPoints(byDate map[time.Time]float64) []model.Point {
	points := make([]model.Point, 0, len(byDate))
	for date, value := range byDate {
		points = append(points, model.Point{Date: date, Value: value})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}
