package repl

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"StockAnalyser/internal/analyser"
	"StockAnalyser/internal/chart"
	"StockAnalyser/internal/provider"
)

func runScript(t *testing.T, src provider.Source, script string) string {
	t.Helper()
	var out bytes.Buffer
	r := New(analyser.New(src), chart.NewTerminalRenderer(&out), strings.NewReader(script), &out)
	if err := r.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func TestRun_QuoteAndExit(t *testing.T) {
	out := runScript(t, &provider.MockSource{Price: 150}, "quote aapl\nexit\n")

	if !strings.Contains(out, "--- Stock Information ---") {
		t.Errorf("missing quote section:\n%s", out)
	}
	if !strings.Contains(out, "Symbol: AAPL") {
		t.Errorf("missing symbol line:\n%s", out)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("missing exit message:\n%s", out)
	}
}

func TestRun_NonNumericWindowKeepsLoopAlive(t *testing.T) {
	out := runScript(t, &provider.MockSource{Price: 150}, "sma AAPL abc\nquote AAPL\nexit\n")

	if !strings.Contains(out, "usage: sma <symbol> <window>") {
		t.Errorf("missing usage line:\n%s", out)
	}
	// The loop must accept the next command after the bad one.
	if !strings.Contains(out, "--- Stock Information ---") {
		t.Errorf("loop did not continue after bad input:\n%s", out)
	}
}

func TestRun_MissingSymbolPrintsUsage(t *testing.T) {
	out := runScript(t, &provider.MockSource{Price: 150}, "quote\nexit\n")

	if !strings.Contains(out, "usage: quote <symbol>") {
		t.Errorf("missing usage line:\n%s", out)
	}
}

func TestRun_UnknownCommandPrintsHelp(t *testing.T) {
	out := runScript(t, &provider.MockSource{Price: 150}, "frobnicate\nexit\n")

	if !strings.Contains(out, `unknown command "frobnicate"`) {
		t.Errorf("missing unknown-command line:\n%s", out)
	}
	if !strings.Contains(out, "Commands:") {
		t.Errorf("missing help text:\n%s", out)
	}
}

func TestRun_QuotaErrorIsOneLineAndLoopContinues(t *testing.T) {
	src := &provider.MockSource{Err: fmt.Errorf("%w: 25 requests per day", provider.ErrRateLimited)}
	out := runScript(t, src, "quote AAPL\nhelp\nexit\n")

	if !strings.Contains(out, "error: ") || !strings.Contains(out, "rate limit") {
		t.Errorf("quota failure not surfaced as readable error:\n%s", out)
	}
	// Still interactive afterwards.
	if strings.Count(out, "Commands:") < 2 {
		t.Errorf("help not printed after the error:\n%s", out)
	}
}

func TestRun_InvalidWindowReported(t *testing.T) {
	out := runScript(t, &provider.MockSource{Price: 150}, "sma AAPL 0\nrsi AAPL 100000\nexit\n")

	if strings.Count(out, "error: invalid window") != 2 {
		t.Errorf("invalid windows not reported:\n%s", out)
	}
}

func TestRun_IndicatorCommands(t *testing.T) {
	out := runScript(t, &provider.MockSource{Price: 150}, "sma AAPL 20\nrsi AAPL 14\nhistory AAPL\nexit\n")

	if !strings.Contains(out, "AAPL SMA(20):") {
		t.Errorf("missing SMA summary:\n%s", out)
	}
	if !strings.Contains(out, "AAPL RSI(14):") {
		t.Errorf("missing RSI summary:\n%s", out)
	}
	if !strings.Contains(out, "Range High:") {
		t.Errorf("missing history summary:\n%s", out)
	}
	if !strings.Contains(out, "close vs SMA(20)") {
		t.Errorf("missing SMA chart caption:\n%s", out)
	}
	if !strings.Contains(out, "RSI(14) with 70/30 reference lines") {
		t.Errorf("missing RSI chart caption:\n%s", out)
	}
}

func TestRun_EOFStopsCleanly(t *testing.T) {
	out := runScript(t, &provider.MockSource{Price: 150}, "quote AAPL\n")

	if !strings.Contains(out, "Symbol: AAPL") {
		t.Errorf("command before EOF not handled:\n%s", out)
	}
}
