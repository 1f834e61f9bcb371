// Package analyser orchestrates data fetching and indicator computation.
package analyser

import (
	"fmt"
	"strings"

	"StockAnalyser/internal/calculator"
	"StockAnalyser/internal/model"
	"StockAnalyser/internal/provider"
)

// compactBars is the approximate bar count of a compact provider response.
const compactBars = 100

// Service composes a data source with the indicator calculators. Each call
// fetches fresh data; nothing is cached across calls.
type Service struct {
	Source provider.Source
}

// New creates a new Service.
func New(src provider.Source) *Service {
	return &Service{Source: src}
}

// HistoryResult is a daily series with its range summary.
type HistoryResult struct {
	Series *model.Series
	High   float64
	Low    float64
	Latest model.PriceBar
}

// IndicatorResult pairs a series with one computed indicator over it.
type IndicatorResult struct {
	Series    *model.Series
	Indicator *model.IndicatorSeries
}

// Quote fetches the latest snapshot for the symbol.
func (s *Service) Quote(symbol string) (*model.Quote, error) {
	q, err := s.Source.Quote(normalize(symbol))
	if err != nil {
		return nil, fmt.Errorf("fetch quote: %w", err)
	}
	return q, nil
}

// History fetches the recent daily series and summarises its range.
func (s *Service) History(symbol string) (*HistoryResult, error) {
	series, err := s.Source.Daily(normalize(symbol), false)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	if series.Len() == 0 {
		return nil, fmt.Errorf("%w: empty series", provider.ErrMalformedPayload)
	}

	res := &HistoryResult{Series: series, Latest: series.Bars[series.Len()-1]}
	res.High, res.Low = series.Bars[0].High, series.Bars[0].Low
	for _, b := range series.Bars {
		if b.High > res.High {
			res.High = b.High
		}
		if b.Low < res.Low {
			res.Low = b.Low
		}
	}
	return res, nil
}

// SMA fetches history and computes the simple moving average over it.
func (s *Service) SMA(symbol string, window int) (*IndicatorResult, error) {
	series, err := s.fetchForWindow(symbol, window+1)
	if err != nil {
		return nil, err
	}
	ind, err := calculator.SMA(series, window)
	if err != nil {
		return nil, err
	}
	return &IndicatorResult{Series: series, Indicator: ind}, nil
}

// RSI fetches history and computes the relative strength index over it.
func (s *Service) RSI(symbol string, window int) (*IndicatorResult, error) {
	series, err := s.fetchForWindow(symbol, window+1)
	if err != nil {
		return nil, err
	}
	ind, err := calculator.RSI(series, window)
	if err != nil {
		return nil, err
	}
	return &IndicatorResult{Series: series, Indicator: ind}, nil
}

// fetchForWindow fetches the daily series, asking for the full history when
// the compact response cannot cover the requested window.
func (s *Service) fetchForWindow(symbol string, needed int) (*model.Series, error) {
	full := needed > compactBars
	series, err := s.Source.Daily(normalize(symbol), full)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	return series, nil
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
