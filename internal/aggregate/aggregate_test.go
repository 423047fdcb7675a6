package aggregate

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macroplot/internal/model"
	"macroplot/internal/sources"
)

func date(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func fixedLoader(byArea map[string]model.Series) sources.Func {
	return func(ctx context.Context, area string) (model.Series, error) {
		series, ok := byArea[area]
		if !ok {
			return model.Series{}, fmt.Errorf("load %q: %w", area, sources.ErrNoRows)
		}
		return series, nil
	}
}

func TestFromMembersSingleMemberIdentity(t *testing.T) {
	points := []model.Point{{Date: date(2019), Value: 100}, {Date: date(2020), Value: 110}}
	load := fixedLoader(map[string]model.Series{
		"Solo": {Label: "Solo", Points: points},
	})

	for name, combine := range map[string]Combine{"sum": SumByDate, "mean": MeanByDate} {
		series, err := FromMembers(context.Background(), zerolog.Nop(), "Region", []string{"Solo"}, load, combine)
		require.NoError(t, err, name)
		assert.Equal(t, "Region", series.Label, name)
		assert.Equal(t, points, series.Points, name)
	}
}

func TestFromMembersSkipsFailedMembers(t *testing.T) {
	load := fixedLoader(map[string]model.Series{
		"A": {Points: []model.Point{{Date: date(2020), Value: 10}}},
		"C": {Points: []model.Point{{Date: date(2020), Value: 30}}},
	})

	series, err := FromMembers(context.Background(), zerolog.Nop(), "Region", []string{"A", "B", "C"}, load, SumByDate)
	require.NoError(t, err)
	require.Equal(t, 1, series.Len())
	assert.Equal(t, 40.0, series.Points[0].Value)
}

func TestFromMembersNoData(t *testing.T) {
	load := fixedLoader(nil)

	_, err := FromMembers(context.Background(), zerolog.Nop(), "Region", []string{"A", "B"}, load, SumByDate)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestFromMembersOtherErrorsAlsoSkipped(t *testing.T) {
	boom := errors.New("source unreadable")
	load := func(ctx context.Context, area string) (model.Series, error) {
		if area == "A" {
			return model.Series{}, boom
		}
		return model.Series{Points: []model.Point{{Date: date(2020), Value: 5}}}, nil
	}

	series, err := FromMembers(context.Background(), zerolog.Nop(), "Region", []string{"A", "B"}, load, SumByDate)
	require.NoError(t, err)
	assert.Equal(t, 5.0, series.Points[0].Value)
}

func TestSumByDateGroups(t *testing.T) {
	collected := []model.Series{
		{Points: []model.Point{{Date: date(2020), Value: 1}, {Date: date(2019), Value: 3}}},
		{Points: []model.Point{{Date: date(2020), Value: 2}}},
	}

	points := SumByDate(2, collected)
	require.Len(t, points, 2)
	assert.Equal(t, date(2019), points[0].Date)
	assert.Equal(t, 3.0, points[0].Value)
	assert.Equal(t, date(2020), points[1].Date)
	assert.Equal(t, 3.0, points[1].Value)
}

func TestMeanByDate(t *testing.T) {
	collected := []model.Series{
		{Points: []model.Point{{Date: date(2020), Value: 10}}},
		{Points: []model.Point{{Date: date(2020), Value: 20}, {Date: date(2019), Value: 4}}},
	}

	points := MeanByDate(2, collected)
	require.Len(t, points, 2)
	assert.Equal(t, 4.0, points[0].Value)
	assert.Equal(t, 15.0, points[1].Value)
}

func TestMeanWithCoverageExcludesThinDates(t *testing.T) {
	// Two members; 2019 reported by only one of them must be excluded,
	// 2020 reported by both must be included.
	collected := []model.Series{
		{Points: []model.Point{{Date: date(2019), Value: 2}, {Date: date(2020), Value: 3}}},
		{Points: []model.Point{{Date: date(2020), Value: 5}}},
	}

	points := MeanWithCoverage(-50, 50)(2, collected)
	require.Len(t, points, 1)
	assert.Equal(t, date(2020), points[0].Date)
	assert.Equal(t, 4.0, points[0].Value)
}

func TestMeanWithCoverageDiscardsOutliers(t *testing.T) {
	// The outlier both fails the band check and costs its date coverage.
	collected := []model.Series{
		{Points: []model.Point{{Date: date(2020), Value: 60}}},
		{Points: []model.Point{{Date: date(2020), Value: 4}}},
	}

	points := MeanWithCoverage(-50, 50)(2, collected)
	assert.Empty(t, points)
}

func TestDirectRelabels(t *testing.T) {
	load := fixedLoader(map[string]model.Series{
		"European Union (27 countries)": {
			Label:  "European Union (27 countries)",
			Points: []model.Point{{Date: date(2020), Value: 6}},
		},
	})

	series, err := Direct(context.Background(), "European Union (27 countries)", "European Union", load)
	require.NoError(t, err)
	assert.Equal(t, "European Union", series.Label)

	series, err = Direct(context.Background(), "European Union (27 countries)", "", load)
	require.NoError(t, err)
	assert.Equal(t, "European Union (27 countries)", series.Label)
}

func TestFromMembersCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	load := fixedLoader(map[string]model.Series{"A": {}})
	_, err := FromMembers(ctx, zerolog.Nop(), "Region", []string{"A"}, load, SumByDate)
	assert.ErrorIs(t, err, context.Canceled)
}
