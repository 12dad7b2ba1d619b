package datasource

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"go.uber.org/zap"

	"github.com/meridian-quant/regimegate/internal/logger"
	"github.com/meridian-quant/regimegate/internal/types"
	"github.com/meridian-quant/regimegate/pkg/errors"
)

// DuckDBLoader reads a reference series from a CSV or parquet file through
// an in-memory DuckDB instance.
type DuckDBLoader struct {
	path   string
	symbol string
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewDuckDBLoader creates a loader for the given data file. The symbol is
// attached to the returned series for logging and diagnostics only.
func NewDuckDBLoader(path, symbol string, log *logger.Logger) *DuckDBLoader {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &DuckDBLoader{
		path:   path,
		symbol: symbol,
		logger: log,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// LoadReferenceSeries implements Loader. The file format is picked from the
// path extension: .parquet uses read_parquet, everything else is treated as
// CSV with automatic schema detection.
func (l *DuckDBLoader) LoadReferenceSeries() (types.PriceSeries, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return types.PriceSeries{}, errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to open duckdb", err)
	}
	defer db.Close()

	reader := "read_csv_auto"
	if strings.HasSuffix(strings.ToLower(l.path), ".parquet") {
		reader = "read_parquet"
	}

	l.logger.Debug("loading reference series",
		zap.String("path", l.path),
		zap.String("reader", reader))

	// CREATE VIEW has no placeholder support; the path is interpolated
	// directly, matching how the file path arrives from configuration.
	createView := fmt.Sprintf(`CREATE VIEW reference_data AS SELECT * FROM %s('%s');`, reader, l.path)
	if _, err := db.Exec(createView); err != nil {
		return types.PriceSeries{}, errors.Wrapf(errors.ErrCodeReferenceLoadFailed, err,
			"failed to read reference data from %s", l.path)
	}

	query, args, err := l.sq.
		Select("time", "open", "high", "low", "close", "volume").
		From("reference_data").
		OrderBy("time ASC").
		ToSql()
	if err != nil {
		return types.PriceSeries{}, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build reference query", err)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return types.PriceSeries{}, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query reference data", err)
	}
	defer rows.Close()

	var bars []types.Bar

	for rows.Next() {
		var bar types.Bar

		var ts time.Time

		if err := rows.Scan(&ts, &bar.Open, &bar.High, &bar.Low, &bar.Close, &bar.Volume); err != nil {
			return types.PriceSeries{}, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan reference row", err)
		}

		bar.Time = ts
		bars = append(bars, bar)
	}

	if err := rows.Err(); err != nil {
		return types.PriceSeries{}, errors.Wrap(errors.ErrCodeQueryFailed, "failed while iterating reference rows", err)
	}

	if len(bars) == 0 {
		return types.PriceSeries{}, errors.Newf(errors.ErrCodeDataNotFound, "no reference rows in %s", l.path)
	}

	series := types.NewPriceSeries(l.symbol, bars)
	if err := series.Validate(); err != nil {
		return types.PriceSeries{}, errors.Wrap(errors.ErrCodeInvalidSeries, "reference series malformed", err)
	}

	l.logger.Info("reference series loaded",
		zap.String("symbol", l.symbol),
		zap.Int("rows", series.Len()))

	return series, nil
}
