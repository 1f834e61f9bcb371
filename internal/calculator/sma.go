package calculator

import (
	"fmt"

	"StockAnalyser/internal/model"
)

// SMA computes the simple moving average of closing prices over the given
// window. The result has exactly len(bars)-window+1 points; the first
// window-1 dates have no defined value and are omitted.
func SMA(series *model.Series, window int) (*model.IndicatorSeries, error) {
	if window < 1 {
		return nil, fmt.Errorf("%w: %d, must be positive", ErrInvalidWindow, window)
	}
	bars := series.Bars
	if window > len(bars) {
		return nil, fmt.Errorf("%w: %d exceeds %d available bars", ErrInvalidWindow, window, len(bars))
	}

	out := &model.IndicatorSeries{
		Name:   fmt.Sprintf("SMA(%d)", window),
		Points: make([]model.IndicatorPoint, 0, len(bars)-window+1),
	}
	sum := 0.0
	for i, b := range bars {
		sum += b.Close
		if i >= window {
			sum -= bars[i-window].Close
		}
		if i >= window-1 {
			out.Points = append(out.Points, model.IndicatorPoint{
				Date:  b.Date,
				Value: sum / float64(window),
			})
		}
	}
	return out, nil
}
