package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

type MATestSuite struct {
	suite.Suite
}

func TestMASuite(t *testing.T) {
	suite.Run(t, new(MATestSuite))
}

func (suite *MATestSuite) TestSMAAlignment() {
	values := []float64{1, 2, 3, 4, 5}
	out := SMA(values, 3)

	suite.Len(out, len(values))
	suite.True(math.IsNaN(out[0]))
	suite.True(math.IsNaN(out[1]))
	suite.InDelta(2.0, out[2], 1e-9)
	suite.InDelta(3.0, out[3], 1e-9)
	suite.InDelta(4.0, out[4], 1e-9)
}

func (suite *MATestSuite) TestSMAInsufficientData() {
	out := SMA([]float64{1, 2}, 5)
	suite.Len(out, 2)
	suite.True(math.IsNaN(out[0]))
	suite.True(math.IsNaN(out[1]))
}

func (suite *MATestSuite) TestSMAInvalidPeriod() {
	out := SMA([]float64{1, 2, 3}, 0)
	suite.Len(out, 3)

	for _, v := range out {
		suite.True(math.IsNaN(v))
	}
}

func (suite *MATestSuite) TestEMASeededWithFirstValue() {
	values := []float64{10, 10, 10, 10}
	out := EMA(values, 3)

	suite.Len(out, len(values))
	for _, v := range out {
		suite.InDelta(10.0, v, 1e-9)
	}
}

func (suite *MATestSuite) TestEMARecurrence() {
	values := []float64{1, 2}
	out := EMA(values, 3) // alpha = 0.5

	suite.InDelta(1.0, out[0], 1e-9)
	suite.InDelta(1.5, out[1], 1e-9)
}

func (suite *MATestSuite) TestWilderSmoothRecurrence() {
	values := []float64{4, 8}
	out := WilderSmooth(values, 4) // alpha = 0.25

	suite.InDelta(4.0, out[0], 1e-9)
	suite.InDelta(5.0, out[1], 1e-9)
}

func (suite *MATestSuite) TestROC() {
	values := []float64{100, 110, 121}
	out := ROC(values, 1)

	suite.True(math.IsNaN(out[0]))
	suite.InDelta(10.0, out[1], 1e-9)
	suite.InDelta(10.0, out[2], 1e-9)
}

func (suite *MATestSuite) TestROCZeroBase() {
	values := []float64{0, 5}
	out := ROC(values, 1)

	suite.Equal(0.0, out[1])
}

func (suite *MATestSuite) TestSlope() {
	values := []float64{100, 101, 102, 104}
	out := Slope(values, 2)

	suite.True(math.IsNaN(out[0]))
	suite.True(math.IsNaN(out[1]))
	suite.InDelta(0.02, out[2], 1e-9)
	suite.InDelta(104.0/101.0-1, out[3], 1e-9)
}

func (suite *MATestSuite) TestSlopeNaNBase() {
	values := []float64{math.NaN(), 1, 2}
	out := Slope(values, 2)

	// NaN base falls back to 0 rather than propagating.
	suite.Equal(0.0, out[2])
}

func (suite *MATestSuite) TestRollingStdConstantSeries() {
	values := []float64{5, 5, 5, 5, 5}
	out := RollingStd(values, 3)

	suite.True(math.IsNaN(out[1]))
	suite.Equal(0.0, out[2])
	suite.Equal(0.0, out[4])
}

func (suite *MATestSuite) TestRollingStdKnownValue() {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	out := RollingStd(values, 8)

	// Population standard deviation of the classic example set is 2.
	suite.InDelta(2.0, out[7], 1e-9)
}

func (suite *MATestSuite) TestEmptyInput() {
	suite.Empty(SMA(nil, 3))
	suite.Empty(EMA(nil, 3))
	suite.Empty(ROC(nil, 3))
}
