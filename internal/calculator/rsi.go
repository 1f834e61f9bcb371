package calculator

import (
	"fmt"

	"StockAnalyser/internal/model"
)

// RSI computes the Wilder-smoothed relative strength index of closing prices
// over the given window. The first window deltas seed the initial average
// gain/loss, so the first point lands on bar index window and the result has
// len(bars)-window points. Requires window+1 bars.
func RSI(series *model.Series, window int) (*model.IndicatorSeries, error) {
	if window < 1 {
		return nil, fmt.Errorf("%w: %d, must be positive", ErrInvalidWindow, window)
	}
	bars := series.Bars
	if window+1 > len(bars) {
		return nil, fmt.Errorf("%w: %d needs %d bars, have %d", ErrInvalidWindow, window, window+1, len(bars))
	}

	closes := series.Closes()

	// Seed: simple average gain/loss over the first window changes.
	var avgGain, avgLoss float64
	for i := 1; i <= window; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(window)
	avgLoss /= float64(window)

	out := &model.IndicatorSeries{
		Name:   fmt.Sprintf("RSI(%d)", window),
		Points: make([]model.IndicatorPoint, 0, len(bars)-window),
	}
	out.Points = append(out.Points, model.IndicatorPoint{
		Date:  bars[window].Date,
		Value: rsiValue(avgGain, avgLoss),
	})

	// Wilder smoothing for the remaining bars.
	for i := window + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(window-1) + gain) / float64(window)
		avgLoss = (avgLoss*float64(window-1) + loss) / float64(window)
		out.Points = append(out.Points, model.IndicatorPoint{
			Date:  bars[i].Date,
			Value: rsiValue(avgGain, avgLoss),
		})
	}
	return out, nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	v := 100 - 100/(1+rs)
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return v
}
