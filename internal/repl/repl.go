// Package repl implements the interactive command loop.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"StockAnalyser/internal/analyser"
	"StockAnalyser/internal/chart"
)

const helpText = `Commands:
  quote <symbol>           latest snapshot for a symbol
  history <symbol>         recent daily history with a close-price chart
  sma <symbol> <window>    close-price chart with a simple moving average overlay
  rsi <symbol> <window>    relative strength index chart (70/30 reference lines)
  help                     show this message
  exit                     quit`

// REPL reads commands line by line and runs the fetch-compute-render
// pipeline for each one. Every command is independent; errors are printed
// and the loop resumes.
type REPL struct {
	Analyser *analyser.Service
	Renderer chart.Renderer
	In       io.Reader
	Out      io.Writer
}

// New creates a REPL reading from in and writing to out.
func New(svc *analyser.Service, renderer chart.Renderer, in io.Reader, out io.Writer) *REPL {
	return &REPL{Analyser: svc, Renderer: renderer, In: in, Out: out}
}

// Run blocks until the exit command or EOF on the input.
func (r *REPL) Run() error {
	fmt.Fprintln(r.Out, "Welcome to the Stock Market Data Analyser!")
	fmt.Fprintln(r.Out, helpText)

	scanner := bufio.NewScanner(r.In)
	for {
		fmt.Fprint(r.Out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(r.Out)
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		cmd, args := strings.ToLower(fields[0]), fields[1:]
		switch cmd {
		case "exit", "quit":
			fmt.Fprintln(r.Out, "Goodbye!")
			return nil
		case "help":
			fmt.Fprintln(r.Out, helpText)
		case "quote":
			r.handleQuote(args)
		case "history":
			r.handleHistory(args)
		case "sma":
			r.handleSMA(args)
		case "rsi":
			r.handleRSI(args)
		default:
			fmt.Fprintf(r.Out, "unknown command %q\n%s\n", cmd, helpText)
		}
	}
}

func (r *REPL) handleQuote(args []string) {
	symbol, ok := r.symbolArg("quote <symbol>", args)
	if !ok {
		return
	}
	q, err := r.Analyser.Quote(symbol)
	if err != nil {
		r.printError(err)
		return
	}
	fmt.Fprint(r.Out, FormatQuote(q))
}

func (r *REPL) handleHistory(args []string) {
	symbol, ok := r.symbolArg("history <symbol>", args)
	if !ok {
		return
	}
	res, err := r.Analyser.History(symbol)
	if err != nil {
		r.printError(err)
		return
	}
	fmt.Fprint(r.Out, FormatHistory(res))
	if err := r.Renderer.RenderSeries(res.Series, nil); err != nil {
		r.printError(fmt.Errorf("render: %w", err))
	}
}

func (r *REPL) handleSMA(args []string) {
	symbol, window, ok := r.windowArgs("sma", args)
	if !ok {
		return
	}
	res, err := r.Analyser.SMA(symbol, window)
	if err != nil {
		r.printError(err)
		return
	}
	fmt.Fprint(r.Out, FormatIndicator(res))
	if err := r.Renderer.RenderSeries(res.Series, res.Indicator); err != nil {
		r.printError(fmt.Errorf("render: %w", err))
	}
}

func (r *REPL) handleRSI(args []string) {
	symbol, window, ok := r.windowArgs("rsi", args)
	if !ok {
		return
	}
	res, err := r.Analyser.RSI(symbol, window)
	if err != nil {
		r.printError(err)
		return
	}
	fmt.Fprint(r.Out, FormatIndicator(res))
	if err := r.Renderer.RenderRSI(res.Series.Symbol, res.Indicator); err != nil {
		r.printError(fmt.Errorf("render: %w", err))
	}
}

func (r *REPL) symbolArg(usage string, args []string) (string, bool) {
	if len(args) != 1 || args[0] == "" {
		fmt.Fprintf(r.Out, "usage: %s\n", usage)
		return "", false
	}
	return args[0], true
}

func (r *REPL) windowArgs(cmd string, args []string) (string, int, bool) {
	usage := fmt.Sprintf("usage: %s <symbol> <window>  (window is a positive integer)", cmd)
	if len(args) != 2 || args[0] == "" {
		fmt.Fprintln(r.Out, usage)
		return "", 0, false
	}
	window, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(r.Out, usage)
		return "", 0, false
	}
	return args[0], window, true
}

func (r *REPL) printError(err error) {
	fmt.Fprintf(r.Out, "error: %v\n", err)
}
