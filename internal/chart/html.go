package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"StockAnalyser/internal/model"
)

// HTMLRenderer writes standalone HTML line charts into a directory and
// reports the written path.
type HTMLRenderer struct {
	Out io.Writer
	Dir string

	// now is swapped in tests for stable file names.
	now func() time.Time
}

// NewHTMLRenderer creates a renderer writing chart files into dir.
func NewHTMLRenderer(out io.Writer, dir string) *HTMLRenderer {
	return &HTMLRenderer{Out: out, Dir: dir, now: time.Now}
}

func (r *HTMLRenderer) Name() string { return "html" }

func (r *HTMLRenderer) RenderSeries(series *model.Series, overlay *model.IndicatorSeries) error {
	if series.Len() == 0 {
		return fmt.Errorf("no bars to plot for %s", series.Symbol)
	}

	line := charts.NewLine()
	title := fmt.Sprintf("%s daily close", series.Symbol)
	if overlay != nil {
		title = fmt.Sprintf("%s daily close vs %s", series.Symbol, overlay.Name)
	}
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1100px", Height: "500px"}),
	)

	dates := make([]string, series.Len())
	closeData := make([]opts.LineData, series.Len())
	for i, b := range series.Bars {
		dates[i] = b.Date.Format("2006-01-02")
		closeData[i] = opts.LineData{Value: b.Close}
	}
	line.SetXAxis(dates).AddSeries("close", closeData)

	if overlay != nil && overlay.Len() > 0 {
		// Pad the head with nulls so the overlay aligns to its suffix dates.
		overlayData := make([]opts.LineData, 0, series.Len())
		for i := overlay.Len(); i < series.Len(); i++ {
			overlayData = append(overlayData, opts.LineData{Value: nil})
		}
		for _, p := range overlay.Points {
			overlayData = append(overlayData, opts.LineData{Value: p.Value})
		}
		line.AddSeries(overlay.Name, overlayData)
	}

	return r.write(series.Symbol, line)
}

func (r *HTMLRenderer) RenderRSI(symbol string, indicator *model.IndicatorSeries) error {
	if indicator.Len() == 0 {
		return fmt.Errorf("no %s points to plot for %s", indicator.Name, symbol)
	}

	line := charts.NewLine()
	title := fmt.Sprintf("%s %s", symbol, indicator.Name)
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 100}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1100px", Height: "400px"}),
	)

	dates := make([]string, indicator.Len())
	data := make([]opts.LineData, indicator.Len())
	for i, p := range indicator.Points {
		dates[i] = p.Date.Format("2006-01-02")
		data[i] = opts.LineData{Value: p.Value}
	}
	line.SetXAxis(dates).AddSeries(indicator.Name, data,
		charts.WithMarkLineNameYAxisItemOpts(
			opts.MarkLineNameYAxisItem{Name: "overbought", YAxis: RSIOverbought},
			opts.MarkLineNameYAxisItem{Name: "oversold", YAxis: RSIOversold},
		),
	)

	return r.write(symbol, line)
}

type renderable interface {
	Render(w io.Writer) error
}

func (r *HTMLRenderer) write(symbol string, chart renderable) error {
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return fmt.Errorf("create chart dir: %w", err)
	}
	name := fmt.Sprintf("%s_%s.html", strings.ToLower(symbol), r.now().Format("20060102_150405"))
	path := filepath.Join(r.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := chart.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	fmt.Fprintf(r.Out, "chart written to %s\n", path)
	return nil
}
