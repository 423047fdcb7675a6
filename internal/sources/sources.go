package sources

import (
	"context"
	"errors"

	"macroplot/internal/model"
)

// ErrNoRows reports that a load found zero matching rows after filtering.
// Single-entity callers treat it as fatal; the aggregator skips the member.
var ErrNoRows = errors.New("no matching rows")

// Func loads one indicator's cleaned series for a single reference area.
type Func func(ctx context.Context, area string) (model.Series, error)
