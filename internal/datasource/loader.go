// Package datasource loads the reference price series used by the regime
// cache. All file/format handling lives here; the regime packages only see
// the Loader boundary and treat any load failure uniformly as "reference
// data unavailable".
package datasource

import "github.com/meridian-quant/regimegate/internal/types"

// Loader supplies the reference instrument's price history.
type Loader interface {
	// LoadReferenceSeries returns the full reference history, ordered by
	// time.
	LoadReferenceSeries() (types.PriceSeries, error)
}

// StaticLoader serves a series held in memory. Used by tests and by
// callers that already have the data loaded.
type StaticLoader struct {
	Series types.PriceSeries
	Err    error
}

// LoadReferenceSeries implements Loader.
func (l *StaticLoader) LoadReferenceSeries() (types.PriceSeries, error) {
	if l.Err != nil {
		return types.PriceSeries{}, l.Err
	}

	return l.Series, nil
}
