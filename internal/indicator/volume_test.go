package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

type VolumeTestSuite struct {
	suite.Suite
}

func TestVolumeSuite(t *testing.T) {
	suite.Run(t, new(VolumeTestSuite))
}

func (suite *VolumeTestSuite) TestOBVAccumulation() {
	closes := []float64{10, 11, 11, 10, 12}
	volumes := []float64{100, 200, 300, 400, 500}

	out := OBV(closes, volumes)

	suite.Equal([]float64{0, 200, 200, -200, 300}, out)
}

func (suite *VolumeTestSuite) TestCMFCloseAtHigh() {
	// Closing on the high every bar puts the full volume into positive
	// money flow, so CMF saturates at 1.
	highs := []float64{12, 13, 14, 15}
	lows := []float64{10, 11, 12, 13}
	closes := []float64{12, 13, 14, 15}
	volumes := []float64{100, 100, 100, 100}

	out := CMF(highs, lows, closes, volumes, 3)

	suite.True(math.IsNaN(out[1]))
	suite.InDelta(1.0, out[2], 1e-9)
	suite.InDelta(1.0, out[3], 1e-9)
}

func (suite *VolumeTestSuite) TestCMFZeroRangeBarsContributeNothing() {
	highs := []float64{10, 10, 12}
	lows := []float64{10, 10, 10}
	closes := []float64{10, 10, 12}
	volumes := []float64{100, 100, 100}

	out := CMF(highs, lows, closes, volumes, 3)

	// Only the third bar has a range; it closes on its high.
	suite.InDelta(1.0/3.0, out[2], 1e-9)
}

func (suite *VolumeTestSuite) TestCMFZeroVolumeWindow() {
	highs := []float64{12, 13, 14}
	lows := []float64{10, 11, 12}
	closes := []float64{11, 12, 13}
	volumes := []float64{0, 0, 0}

	out := CMF(highs, lows, closes, volumes, 3)
	suite.Equal(0.0, out[2])
}

func (suite *VolumeTestSuite) TestMFIWarmUpNeutral() {
	highs := []float64{10, 11}
	lows := []float64{9, 10}
	closes := []float64{9.5, 10.5}
	volumes := []float64{100, 100}

	out := MFI(highs, lows, closes, volumes, 14)

	suite.Equal([]float64{50, 50}, out)
}

func (suite *VolumeTestSuite) TestMFIPureInflowSaturates() {
	n := 10
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	volumes := make([]float64, n)

	for i := 0; i < n; i++ {
		closes[i] = 100 + float64(i)
		highs[i] = closes[i] + 1
		lows[i] = closes[i] - 1
		volumes[i] = 1000
	}

	out := MFI(highs, lows, closes, volumes, 5)

	suite.Equal(100.0, out[n-1])
}

func (suite *VolumeTestSuite) TestMFIFlatPricesNeutral() {
	n := 10
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	volumes := make([]float64, n)

	for i := 0; i < n; i++ {
		highs[i] = 100
		lows[i] = 100
		closes[i] = 100
		volumes[i] = 1000
	}

	out := MFI(highs, lows, closes, volumes, 5)

	for _, v := range out {
		suite.Equal(50.0, v)
	}
}

func (suite *VolumeTestSuite) TestMFIBounded() {
	highs := []float64{12, 13, 11, 14, 10, 15, 12, 13}
	lows := []float64{10, 11, 9, 12, 8, 13, 10, 11}
	closes := []float64{11, 12, 10, 13, 9, 14, 11, 12}
	volumes := []float64{100, 150, 200, 120, 180, 90, 140, 160}

	out := MFI(highs, lows, closes, volumes, 3)

	for _, v := range out {
		suite.GreaterOrEqual(v, 0.0)
		suite.LessOrEqual(v, 100.0)
	}
}
