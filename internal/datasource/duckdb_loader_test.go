package datasource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/meridian-quant/regimegate/pkg/errors"
)

type DuckDBLoaderTestSuite struct {
	suite.Suite
}

func TestDuckDBLoaderSuite(t *testing.T) {
	suite.Run(t, new(DuckDBLoaderTestSuite))
}

func (suite *DuckDBLoaderTestSuite) writeCSV(name, content string) string {
	path := filepath.Join(suite.T().TempDir(), name)
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0o644))

	return path
}

func (suite *DuckDBLoaderTestSuite) TestLoadsCSV() {
	path := suite.writeCSV("reference.csv", `time,open,high,low,close,volume
2024-01-02 00:00:00,100,101,99,100.5,1000
2024-01-03 00:00:00,100.5,102,100,101.5,1100
2024-01-04 00:00:00,101.5,103,101,102.5,1200
`)

	loader := NewDuckDBLoader(path, "SPY", nil)

	series, err := loader.LoadReferenceSeries()
	suite.Require().NoError(err)

	suite.Equal("SPY", series.Symbol)
	suite.Equal(3, series.Len())
	suite.Equal(100.5, series.Bars[0].Close)
	suite.Equal(1200.0, series.Bars[2].Volume)
	suite.NoError(series.Validate())
}

func (suite *DuckDBLoaderTestSuite) TestOrdersRowsByTime() {
	// Rows arrive shuffled; the loader sorts by time.
	path := suite.writeCSV("shuffled.csv", `time,open,high,low,close,volume
2024-01-04 00:00:00,101.5,103,101,102.5,1200
2024-01-02 00:00:00,100,101,99,100.5,1000
2024-01-03 00:00:00,100.5,102,100,101.5,1100
`)

	loader := NewDuckDBLoader(path, "SPY", nil)

	series, err := loader.LoadReferenceSeries()
	suite.Require().NoError(err)
	suite.Require().Equal(3, series.Len())

	suite.True(series.Bars[0].Time.Before(series.Bars[1].Time))
	suite.True(series.Bars[1].Time.Before(series.Bars[2].Time))
}

func (suite *DuckDBLoaderTestSuite) TestMissingFile() {
	loader := NewDuckDBLoader(filepath.Join(suite.T().TempDir(), "nope.csv"), "SPY", nil)

	_, err := loader.LoadReferenceSeries()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeReferenceLoadFailed))
}

func (suite *DuckDBLoaderTestSuite) TestEmptyFileIsDataNotFound() {
	path := suite.writeCSV("empty.csv", "time,open,high,low,close,volume\n")

	loader := NewDuckDBLoader(path, "SPY", nil)

	_, err := loader.LoadReferenceSeries()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeDataNotFound))
}

func (suite *DuckDBLoaderTestSuite) TestDuplicateTimestampRejected() {
	path := suite.writeCSV("dupes.csv", `time,open,high,low,close,volume
2024-01-02 00:00:00,100,101,99,100.5,1000
2024-01-02 00:00:00,100.5,102,100,101.5,1100
`)

	loader := NewDuckDBLoader(path, "SPY", nil)

	_, err := loader.LoadReferenceSeries()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidSeries))
}
