package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"StockAnalyser/internal/analyser"
	"StockAnalyser/internal/chart"
	"StockAnalyser/internal/config"
	"StockAnalyser/internal/provider"
	"StockAnalyser/internal/repl"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Optional .env with the API key, kept out of version control.
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	var src provider.Source
	if os.Getenv("USE_MOCK_SOURCE") == "true" {
		src = &provider.MockSource{Price: 100}
	} else {
		src = provider.NewAlphaVantageSource(cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", src.Name())

	var renderer chart.Renderer
	switch cfg.Chart.Renderer {
	case "html":
		renderer = chart.NewHTMLRenderer(os.Stdout, cfg.Chart.OutputDir)
	default:
		renderer = chart.NewTerminalRenderer(os.Stdout)
	}
	log.Printf("[INFO] chart renderer: %s", renderer.Name())

	r := repl.New(analyser.New(src), renderer, os.Stdin, os.Stdout)
	if err := r.Run(); err != nil {
		log.Fatalf("[FATAL] command loop: %v", err)
	}
}
