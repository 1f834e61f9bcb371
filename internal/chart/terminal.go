package chart

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"

	"StockAnalyser/internal/model"
)

// TerminalRenderer draws ASCII line charts directly into the terminal.
type TerminalRenderer struct {
	Out    io.Writer
	Height int
	Width  int
}

// NewTerminalRenderer creates a renderer writing to out.
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{Out: out, Height: 14, Width: 80}
}

func (r *TerminalRenderer) Name() string { return "terminal" }

func (r *TerminalRenderer) RenderSeries(series *model.Series, overlay *model.IndicatorSeries) error {
	closes := series.Closes()
	if len(closes) == 0 {
		return fmt.Errorf("no bars to plot for %s", series.Symbol)
	}

	if overlay == nil || overlay.Len() == 0 {
		graph := asciigraph.Plot(closes,
			asciigraph.Height(r.Height),
			asciigraph.Width(r.Width),
			asciigraph.Caption(fmt.Sprintf("%s daily close, last %d trading days", series.Symbol, len(closes))),
		)
		fmt.Fprintln(r.Out, graph)
		return nil
	}

	// Truncate the closes to the overlay's span so both lines share an x axis.
	span := overlay.Len()
	graph := asciigraph.PlotMany([][]float64{closes[len(closes)-span:], overlay.Values()},
		asciigraph.Height(r.Height),
		asciigraph.Width(r.Width),
		asciigraph.SeriesColors(asciigraph.Default, asciigraph.Yellow),
		asciigraph.Caption(fmt.Sprintf("%s close vs %s, last %d trading days", series.Symbol, overlay.Name, span)),
	)
	fmt.Fprintln(r.Out, graph)
	return nil
}

func (r *TerminalRenderer) RenderRSI(symbol string, indicator *model.IndicatorSeries) error {
	if indicator.Len() == 0 {
		return fmt.Errorf("no %s points to plot for %s", indicator.Name, symbol)
	}

	values := indicator.Values()
	graph := asciigraph.PlotMany([][]float64{values, level(len(values), RSIOverbought), level(len(values), RSIOversold)},
		asciigraph.Height(r.Height),
		asciigraph.Width(r.Width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(100),
		asciigraph.SeriesColors(asciigraph.Default, asciigraph.Red, asciigraph.Green),
		asciigraph.Caption(fmt.Sprintf("%s %s with 70/30 reference lines", symbol, indicator.Name)),
	)
	fmt.Fprintln(r.Out, graph)
	return nil
}

func level(n int, v float64) []float64 {
	line := make([]float64, n)
	for i := range line {
		line[i] = v
	}
	return line
}
