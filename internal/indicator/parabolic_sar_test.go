package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ParabolicSARTestSuite struct {
	suite.Suite
}

func TestParabolicSARSuite(t *testing.T) {
	suite.Run(t, new(ParabolicSARTestSuite))
}

func (suite *ParabolicSARTestSuite) TestFirstEntryUndefined() {
	highs := []float64{10, 11, 12}
	lows := []float64{9, 10, 11}

	out := ParabolicSAR(highs, lows, 0.02, 0.2)

	suite.True(math.IsNaN(out[0]))
	suite.False(math.IsNaN(out[1]))
}

func (suite *ParabolicSARTestSuite) TestSeedUptrend() {
	state := NewSARState(10, 9, 12, 11, 0.02)

	suite.True(state.Uptrend)
	suite.Equal(9.0, state.SAR)
	suite.Equal(12.0, state.ExtremePoint)
	suite.Equal(0.02, state.Acceleration)
}

func (suite *ParabolicSARTestSuite) TestSeedDowntrend() {
	state := NewSARState(12, 11, 10, 9, 0.02)

	suite.False(state.Uptrend)
	suite.Equal(12.0, state.SAR)
	suite.Equal(9.0, state.ExtremePoint)
}

func (suite *ParabolicSARTestSuite) TestStepAdvancesTowardExtreme() {
	prev := SARState{SAR: 10, Uptrend: true, ExtremePoint: 20, Acceleration: 0.02}

	next := SARStep(prev, 21, 15, 19, 14, 0.02, 0.2)

	suite.True(next.Uptrend)
	suite.InDelta(10.2, next.SAR, 1e-9)
	// A new high extends the extreme point and speeds up the factor.
	suite.Equal(21.0, next.ExtremePoint)
	suite.InDelta(0.04, next.Acceleration, 1e-9)
}

func (suite *ParabolicSARTestSuite) TestStepClampsToPriorBarLow() {
	prev := SARState{SAR: 13.9, Uptrend: true, ExtremePoint: 20, Acceleration: 0.5}

	// Unclamped candidate would be 16.95, above the prior bar's low.
	next := SARStep(prev, 19, 15, 18, 14, 0.02, 0.2)

	suite.True(next.Uptrend)
	suite.Equal(14.0, next.SAR)
}

func (suite *ParabolicSARTestSuite) TestStepFlipResetsState() {
	prev := SARState{SAR: 10, Uptrend: true, ExtremePoint: 20, Acceleration: 0.1}

	next := SARStep(prev, 11, 9, 18, 12, 0.02, 0.2)

	suite.False(next.Uptrend)
	suite.Equal(20.0, next.SAR)
	suite.Equal(9.0, next.ExtremePoint)
	suite.Equal(0.02, next.Acceleration)
}

func (suite *ParabolicSARTestSuite) TestAccelerationCapped() {
	prev := SARState{SAR: 10, Uptrend: true, ExtremePoint: 20, Acceleration: 0.19}

	next := SARStep(prev, 21, 15, 19, 14, 0.02, 0.2)

	suite.InDelta(0.2, next.Acceleration, 1e-9)
}

func (suite *ParabolicSARTestSuite) TestUptrendSARStaysBelowPrice() {
	n := 30
	highs := make([]float64, n)
	lows := make([]float64, n)

	for i := 0; i < n; i++ {
		highs[i] = 101 + float64(i)
		lows[i] = 99 + float64(i)
	}

	out := ParabolicSAR(highs, lows, 0.02, 0.2)

	for i := 1; i < n; i++ {
		suite.Less(out[i], lows[i], "bar %d", i)
	}
}

func (suite *ParabolicSARTestSuite) TestTooShortInput() {
	out := ParabolicSAR([]float64{10}, []float64{9}, 0.02, 0.2)
	suite.Len(out, 1)
	suite.True(math.IsNaN(out[0]))
}
