package model

import "time"

// PriceBar is a single daily OHLCV bar.
type PriceBar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Series holds the daily bars for one symbol, ordered by ascending date.
// Gaps from non-trading days are expected and not filled.
type Series struct {
	Symbol string
	Bars   []PriceBar
}

// Len returns the number of bars in the series.
func (s *Series) Len() int { return len(s.Bars) }

// Closes returns the closing prices in date order.
func (s *Series) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Quote is the latest snapshot for a symbol.
type Quote struct {
	Symbol           string
	Price            float64
	Open             float64
	High             float64
	Low              float64
	Volume           float64
	LatestTradingDay time.Time
	PreviousClose    float64
	Change           float64
	ChangePercent    float64
}
