// Package chart renders price and indicator series as line charts.
package chart

import "StockAnalyser/internal/model"

// Overbought/oversold reference levels conventionally drawn on RSI charts.
const (
	RSIOverbought = 70.0
	RSIOversold   = 30.0
)

// Renderer defines the interface for presenting charts to the user.
type Renderer interface {
	// RenderSeries draws the closing prices, with an optional indicator
	// overlay on the same axis.
	RenderSeries(series *model.Series, overlay *model.IndicatorSeries) error
	// RenderRSI draws an indicator on its own 0-100 axis with reference
	// lines at 70/30.
	RenderRSI(symbol string, indicator *model.IndicatorSeries) error
	Name() string
}
