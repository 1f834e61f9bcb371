package provider

import "StockAnalyser/internal/model"

// Source defines the interface for fetching quote and history data.
type Source interface {
	// Quote returns the latest snapshot for the symbol.
	Quote(symbol string) (*model.Quote, error)
	// Daily returns the daily bar series for the symbol, ascending by date.
	// With full=false roughly the last 100 bars are returned, with full=true
	// the whole available history.
	Daily(symbol string, full bool) (*model.Series, error)
	Name() string
}
