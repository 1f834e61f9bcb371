package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockAnalyser/internal/model"
)

func seriesFromCloses(closes []float64) *model.Series {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.PriceBar, len(closes))
	for i, c := range closes {
		bars[i] = model.PriceBar{
			Date:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c + 0.5,
			Low:    c - 0.5,
			Close:  c,
			Volume: 1000,
		}
	}
	return &model.Series{Symbol: "TEST", Bars: bars}
}

func TestSMA(t *testing.T) {
	tests := []struct {
		name     string
		closes   []float64
		window   int
		expected []float64
	}{
		{
			name:     "hand-computed five bars window three",
			closes:   []float64{10, 11, 12, 11, 13},
			window:   3,
			expected: []float64{11.0, 11.333333, 12.0},
		},
		{
			name:     "window one is the closes themselves",
			closes:   []float64{10, 11, 12},
			window:   1,
			expected: []float64{10, 11, 12},
		},
		{
			name:     "window equals series length",
			closes:   []float64{2, 4, 6, 8},
			window:   4,
			expected: []float64{5.0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seriesFromCloses(tt.closes)
			got, err := SMA(s, tt.window)
			require.NoError(t, err)
			require.Len(t, got.Points, len(tt.closes)-tt.window+1)
			for i, want := range tt.expected {
				assert.InDelta(t, want, got.Points[i].Value, 1e-6, "point %d", i)
			}
		})
	}
}

func TestSMA_Alignment(t *testing.T) {
	s := seriesFromCloses([]float64{10, 11, 12, 11, 13})
	got, err := SMA(s, 3)
	require.NoError(t, err)

	// First point lands on the date of the bar completing the first window.
	assert.Equal(t, s.Bars[2].Date, got.Points[0].Date)
	assert.Equal(t, s.Bars[4].Date, got.Points[2].Date)
	assert.Equal(t, "SMA(3)", got.Name)
}

func TestSMA_InvalidWindow(t *testing.T) {
	s := seriesFromCloses([]float64{10, 11, 12, 11, 13})
	for _, window := range []int{0, -1, 6} {
		_, err := SMA(s, window)
		assert.ErrorIs(t, err, ErrInvalidWindow, "window %d", window)
	}
}
