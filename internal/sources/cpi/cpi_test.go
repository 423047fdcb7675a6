package cpi

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macroplot/internal/sources"
)

const fixture = `Reference area,TIME_PERIOD,OBS_VALUE
Testland,2020,3.5
Testland,2019,1.2
Testland,199x,9.9
Testland,2021,none
Othria,2019,2.0
`

func writeFixture(t *testing.T) *Source {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cpi.csv")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))
	return NewWithConfig(Config{Path: path})
}

func TestInflation(t *testing.T) {
	source := writeFixture(t)

	series, err := source.Inflation(context.Background(), "Testland")
	require.NoError(t, err)

	// Unparsable year and value rows dropped, remainder sorted ascending.
	require.Equal(t, 2, series.Len())
	assert.Equal(t, time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC), series.Points[0].Date)
	assert.Equal(t, 1.2, series.Points[0].Value)
	assert.Equal(t, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), series.Points[1].Date)
	assert.Equal(t, 3.5, series.Points[1].Value)
}

func TestInflationUnknownArea(t *testing.T) {
	source := writeFixture(t)

	_, err := source.Inflation(context.Background(), "Nowhere")
	assert.ErrorIs(t, err, sources.ErrNoRows)
}
