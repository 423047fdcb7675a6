package chart

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macroplot/internal/model"
)

func TestRenderWritesPNG(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "gdp.png")
	series := []model.Series{
		{
			Label: "Testland",
			Points: []model.Point{
				{Date: time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), Value: 100e6},
				{Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), Value: 110e6},
			},
		},
		{
			Label: "Othria",
			Points: []model.Point{
				{Date: time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), Value: 50e6},
			},
		},
	}

	style := Style{
		Title:  "Real GDP Over Time",
		XLabel: "Date",
		YLabel: "Real GDP (Million $)",
		Scale:  1e6,
	}
	require.NoError(t, Render(style, series, outPath))

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderNoSeries(t *testing.T) {
	err := Render(Style{}, nil, filepath.Join(t.TempDir(), "empty.png"))
	assert.ErrorIs(t, err, ErrNoSeries)
}
