package provider

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"StockAnalyser/internal/model"
)

// DefaultBaseURL is the Alpha Vantage query endpoint.
const DefaultBaseURL = "https://www.alphavantage.co/query"

// AlphaVantageSource implements Source against the Alpha Vantage HTTP API.
type AlphaVantageSource struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewAlphaVantageSource creates a new Alpha Vantage source with optional
// proxy support.
func NewAlphaVantageSource(baseURL, apiKey, proxyURL string) *AlphaVantageSource {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &AlphaVantageSource{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (s *AlphaVantageSource) Name() string { return "alphavantage" }

// avGlobalQuote mirrors the numbered keys of the GLOBAL_QUOTE payload. All
// numerics arrive string-encoded.
type avGlobalQuote struct {
	Symbol           string `json:"01. symbol"`
	Open             string `json:"02. open"`
	High             string `json:"03. high"`
	Low              string `json:"04. low"`
	Price            string `json:"05. price"`
	Volume           string `json:"06. volume"`
	LatestTradingDay string `json:"07. latest trading day"`
	PreviousClose    string `json:"08. previous close"`
	Change           string `json:"09. change"`
	ChangePercent    string `json:"10. change percent"`
}

type avBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// avEnvelope covers every response shape the API serves: the requested data,
// an error message for bad symbols, or a Note/Information text when the free
// quota is exhausted.
type avEnvelope struct {
	ErrorMessage string           `json:"Error Message"`
	Note         string           `json:"Note"`
	Information  string           `json:"Information"`
	GlobalQuote  *avGlobalQuote   `json:"Global Quote"`
	DailySeries  map[string]avBar `json:"Time Series (Daily)"`
}

func (s *AlphaVantageSource) fetch(params url.Values) (*avEnvelope, error) {
	params.Set("apikey", s.APIKey)
	endpoint := s.BaseURL + "?" + params.Encode()

	resp, err := s.Client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("alpha vantage request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("alpha vantage read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alpha vantage: status %d, body: %s", resp.StatusCode, string(body))
	}

	var env avEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if env.Note != "" {
		return nil, fmt.Errorf("%w: %s", ErrRateLimited, env.Note)
	}
	if env.Information != "" {
		return nil, fmt.Errorf("%w: %s", ErrRateLimited, env.Information)
	}
	if env.ErrorMessage != "" {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSymbol, env.ErrorMessage)
	}
	return &env, nil
}

// Quote fetches the GLOBAL_QUOTE snapshot for the symbol.
func (s *AlphaVantageSource) Quote(symbol string) (*model.Quote, error) {
	env, err := s.fetch(url.Values{
		"function": {"GLOBAL_QUOTE"},
		"symbol":   {symbol},
	})
	if err != nil {
		return nil, err
	}
	// The API answers an unknown symbol with an empty Global Quote object.
	if env.GlobalQuote == nil || env.GlobalQuote.Symbol == "" {
		return nil, fmt.Errorf("%w: no quote data for %q", ErrUnknownSymbol, symbol)
	}

	gq := env.GlobalQuote
	q := &model.Quote{Symbol: gq.Symbol}
	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"price", gq.Price, &q.Price},
		{"open", gq.Open, &q.Open},
		{"high", gq.High, &q.High},
		{"low", gq.Low, &q.Low},
		{"volume", gq.Volume, &q.Volume},
		{"previous close", gq.PreviousClose, &q.PreviousClose},
		{"change", gq.Change, &q.Change},
		{"change percent", strings.TrimSuffix(gq.ChangePercent, "%"), &q.ChangePercent},
	}
	for _, f := range fields {
		v, err := strconv.ParseFloat(f.raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: quote %s %q: %v", ErrMalformedPayload, f.name, f.raw, err)
		}
		*f.dst = v
	}
	day, err := time.Parse("2006-01-02", gq.LatestTradingDay)
	if err != nil {
		return nil, fmt.Errorf("%w: quote trading day %q: %v", ErrMalformedPayload, gq.LatestTradingDay, err)
	}
	q.LatestTradingDay = day
	return q, nil
}

// Daily fetches the TIME_SERIES_DAILY history for the symbol.
func (s *AlphaVantageSource) Daily(symbol string, full bool) (*model.Series, error) {
	outputSize := "compact"
	if full {
		outputSize = "full"
	}
	env, err := s.fetch(url.Values{
		"function":   {"TIME_SERIES_DAILY"},
		"symbol":     {symbol},
		"outputsize": {outputSize},
	})
	if err != nil {
		return nil, err
	}
	if len(env.DailySeries) == 0 {
		return nil, fmt.Errorf("%w: no daily series for %q", ErrUnknownSymbol, symbol)
	}

	bars := make([]model.PriceBar, 0, len(env.DailySeries))
	for date, raw := range env.DailySeries {
		bar, err := parseBar(date, raw)
		if err != nil {
			return nil, err
		}
		bars = append(bars, bar)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return &model.Series{Symbol: strings.ToUpper(symbol), Bars: bars}, nil
}

func parseBar(date string, raw avBar) (model.PriceBar, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return model.PriceBar{}, fmt.Errorf("%w: bar date %q: %v", ErrMalformedPayload, date, err)
	}
	bar := model.PriceBar{Date: day}
	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"open", raw.Open, &bar.Open},
		{"high", raw.High, &bar.High},
		{"low", raw.Low, &bar.Low},
		{"close", raw.Close, &bar.Close},
		{"volume", raw.Volume, &bar.Volume},
	}
	for _, f := range fields {
		v, err := strconv.ParseFloat(f.raw, 64)
		if err != nil {
			return model.PriceBar{}, fmt.Errorf("%w: bar %s %s %q: %v", ErrMalformedPayload, date, f.name, f.raw, err)
		}
		*f.dst = v
	}
	return bar, nil
}
