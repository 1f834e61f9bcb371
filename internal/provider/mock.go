package provider

import (
	"strings"
	"time"

	"StockAnalyser/internal/model"
)

// MockSource returns controllable fixed data for development and testing.
type MockSource struct {
	Price     float64
	DailyData []model.PriceBar
	Err       error
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Quote(symbol string) (*model.Quote, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	bars := m.bars(symbol, 2)
	last, prev := bars[len(bars)-1], bars[len(bars)-2]
	change := last.Close - prev.Close
	return &model.Quote{
		Symbol:           strings.ToUpper(symbol),
		Price:            last.Close,
		Open:             last.Open,
		High:             last.High,
		Low:              last.Low,
		Volume:           last.Volume,
		LatestTradingDay: last.Date,
		PreviousClose:    prev.Close,
		Change:           change,
		ChangePercent:    change / prev.Close * 100,
	}, nil
}

func (m *MockSource) Daily(symbol string, full bool) (*model.Series, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	count := 100
	if full {
		count = 500
	}
	return &model.Series{Symbol: strings.ToUpper(symbol), Bars: m.bars(symbol, count)}, nil
}

func (m *MockSource) bars(symbol string, count int) []model.PriceBar {
	if m.DailyData != nil {
		return m.DailyData
	}
	base := m.Price
	if base == 0 {
		base = 100
	}
	bars := make([]model.PriceBar, count)
	start := time.Now().UTC().Truncate(24 * time.Hour)
	for i := 0; i < count; i++ {
		p := base * (1 + float64(i-count/2)*0.001)
		bars[i] = model.PriceBar{
			Date:   start.AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
