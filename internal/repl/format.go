package repl

import (
	"fmt"
	"strings"

	"StockAnalyser/internal/analyser"
	"StockAnalyser/internal/model"
)

// FormatQuote formats the latest snapshot for terminal display.
func FormatQuote(q *model.Quote) string {
	var b strings.Builder
	b.WriteString("--- Stock Information ---\n")
	fmt.Fprintf(&b, "Symbol: %s\n", q.Symbol)
	fmt.Fprintf(&b, "Current Price: $%.2f\n", q.Price)
	fmt.Fprintf(&b, "Open: $%.2f\n", q.Open)
	fmt.Fprintf(&b, "High: $%.2f\n", q.High)
	fmt.Fprintf(&b, "Low: $%.2f\n", q.Low)
	fmt.Fprintf(&b, "Volume: %.0f\n", q.Volume)
	fmt.Fprintf(&b, "Latest Trading Day: %s\n", q.LatestTradingDay.Format("2006-01-02"))
	fmt.Fprintf(&b, "Previous Close: $%.2f\n", q.PreviousClose)
	fmt.Fprintf(&b, "Change: %+.2f (%+.2f%%)\n", q.Change, q.ChangePercent)
	return b.String()
}

// FormatHistory formats the history range summary.
func FormatHistory(res *analyser.HistoryResult) string {
	s := res.Series
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d trading days, %s to %s\n",
		s.Symbol, s.Len(),
		s.Bars[0].Date.Format("2006-01-02"),
		res.Latest.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "Range High: $%.2f | Range Low: $%.2f | Last Close: $%.2f\n",
		res.High, res.Low, res.Latest.Close)
	return b.String()
}

// FormatIndicator formats the latest value of a computed indicator.
func FormatIndicator(res *analyser.IndicatorResult) string {
	var b strings.Builder
	last, ok := res.Indicator.Last()
	if !ok {
		return b.String()
	}
	fmt.Fprintf(&b, "%s %s: %.2f as of %s (%d points)\n",
		res.Series.Symbol, res.Indicator.Name, last.Value,
		last.Date.Format("2006-01-02"), res.Indicator.Len())
	return b.String()
}
