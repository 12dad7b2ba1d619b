package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type MarketTestSuite struct {
	suite.Suite
}

func TestMarketSuite(t *testing.T) {
	suite.Run(t, new(MarketTestSuite))
}

func (suite *MarketTestSuite) dailyBars(n int) []Bar {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]Bar, n)

	for i := range bars {
		c := 100 + float64(i)
		bars[i] = Bar{
			Time:   start.AddDate(0, 0, i),
			Open:   c - 0.5,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: float64(1000 * (i + 1)),
		}
	}

	return bars
}

func (suite *MarketTestSuite) TestNewPriceSeries() {
	bars := suite.dailyBars(3)
	series := NewPriceSeries("SPY", bars)

	suite.Equal("SPY", series.Symbol)
	suite.Equal(3, series.Len())
}

func (suite *MarketTestSuite) TestValidateOrderedSeries() {
	series := NewPriceSeries("SPY", suite.dailyBars(10))
	suite.NoError(series.Validate())
}

func (suite *MarketTestSuite) TestValidateRejectsDuplicateTimestamp() {
	bars := suite.dailyBars(10)
	bars[5].Time = bars[4].Time

	series := NewPriceSeries("SPY", bars)
	suite.Error(series.Validate())
}

func (suite *MarketTestSuite) TestValidateRejectsRegression() {
	bars := suite.dailyBars(10)
	bars[5].Time = bars[4].Time.Add(-time.Hour)

	series := NewPriceSeries("SPY", bars)
	suite.Error(series.Validate())
}

func (suite *MarketTestSuite) TestValidateEmptyAndSingle() {
	suite.NoError(PriceSeries{}.Validate())
	suite.NoError(NewPriceSeries("SPY", suite.dailyBars(1)).Validate())
}

func (suite *MarketTestSuite) TestTruncateAtExactBarTime() {
	series := NewPriceSeries("SPY", suite.dailyBars(10))

	// Inclusive cut: the bar stamped exactly at t stays.
	truncated := series.TruncateAt(series.Bars[4].Time)
	suite.Equal(5, truncated.Len())
	suite.Equal("SPY", truncated.Symbol)
}

func (suite *MarketTestSuite) TestTruncateAtBetweenBars() {
	series := NewPriceSeries("SPY", suite.dailyBars(10))

	truncated := series.TruncateAt(series.Bars[4].Time.Add(12 * time.Hour))
	suite.Equal(5, truncated.Len())
}

func (suite *MarketTestSuite) TestTruncateBeforeFirstBar() {
	series := NewPriceSeries("SPY", suite.dailyBars(10))

	truncated := series.TruncateAt(series.Bars[0].Time.Add(-time.Minute))
	suite.Equal(0, truncated.Len())
}

func (suite *MarketTestSuite) TestTruncateAfterLastBar() {
	series := NewPriceSeries("SPY", suite.dailyBars(10))

	truncated := series.TruncateAt(series.Bars[9].Time.AddDate(1, 0, 0))
	suite.Equal(10, truncated.Len())
}

func (suite *MarketTestSuite) TestColumnAccessors() {
	series := NewPriceSeries("SPY", suite.dailyBars(3))

	suite.Equal([]float64{99.5, 100.5, 101.5}, series.Opens())
	suite.Equal([]float64{101, 102, 103}, series.Highs())
	suite.Equal([]float64{99, 100, 101}, series.Lows())
	suite.Equal([]float64{100, 101, 102}, series.Closes())
	suite.Equal([]float64{1000, 2000, 3000}, series.Volumes())
}
