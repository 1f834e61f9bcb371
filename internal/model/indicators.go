package model

import "time"

// IndicatorPoint is one dated indicator value.
type IndicatorPoint struct {
	Date  time.Time
	Value float64
}

// IndicatorSeries holds computed indicator values aligned to a suffix of the
// input Series. Dates without a defined value are omitted, not zero-filled.
type IndicatorSeries struct {
	Name   string
	Points []IndicatorPoint
}

// Len returns the number of points in the series.
func (s *IndicatorSeries) Len() int { return len(s.Points) }

// Values returns the indicator values in date order.
func (s *IndicatorSeries) Values() []float64 {
	values := make([]float64, len(s.Points))
	for i, p := range s.Points {
		values[i] = p.Value
	}
	return values
}

// Last returns the most recent point, or false if the series is empty.
func (s *IndicatorSeries) Last() (IndicatorPoint, bool) {
	if len(s.Points) == 0 {
		return IndicatorPoint{}, false
	}
	return s.Points[len(s.Points)-1], true
}
