package models

import "strings"

// Quote is a normalized real-time quote. Missing upstream fields are
// normalized to zero values rather than left absent; currency defaults
// to USD.
type Quote struct {
	Ticker           string  `json:"ticker"`
	Price            float64 `json:"price"`
	Change           float64 `json:"change"`
	ChangePercent    float64 `json:"changePercent"`
	MarketCap        float64 `json:"marketCap"`
	Volume           int64   `json:"volume"`
	FiftyTwoWeekHigh float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow  float64 `json:"fiftyTwoWeekLow"`
	Currency         string  `json:"currency"`
}

// ChartPoint is a single bar in a price history series, date in ISO form
// (calendar day). Series are chronological ascending.
type ChartPoint struct {
	Date   string  `json:"date"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// Financials is a trailing-twelve-month snapshot. Both figures are nullable:
// the provider omits them for some listings.
type Financials struct {
	Ticker          string   `json:"ticker"`
	TTMRevenue      *float64 `json:"ttmRevenue"`
	TTMProfitMargin *float64 `json:"ttmProfitMargin"`
}

// Commentary pairs one commentary sentence and one climate-impact sentence
// per ticker, generated in a single batched LLM call.
type Commentary struct {
	Ticker        string `json:"ticker"`
	Commentary    string `json:"commentary"`
	ClimateImpact string `json:"climateImpact"`
}

// ChartPeriod selects the date range and sampling granularity of a chart.
type ChartPeriod string

const (
	Period1W ChartPeriod = "1W"
	Period1M ChartPeriod = "1M"
	Period3M ChartPeriod = "3M"
	Period1Y ChartPeriod = "1Y"

	// DefaultPeriod is the fallback for unknown or empty period strings.
	DefaultPeriod = Period1M
)

// ParseChartPeriod sanitizes a raw period string: trimmed, case-insensitive,
// anything outside {1W, 1M, 3M, 1Y} coerces to the default.
func ParseChartPeriod(raw string) ChartPeriod {
	switch ChartPeriod(strings.ToUpper(strings.TrimSpace(raw))) {
	case Period1W:
		return Period1W
	case Period1M:
		return Period1M
	case Period3M:
		return Period3M
	case Period1Y:
		return Period1Y
	default:
		return DefaultPeriod
	}
}

// Days returns the trailing window length for the period.
func (p ChartPeriod) Days() int {
	switch p {
	case Period1W:
		return 7
	case Period3M:
		return 90
	case Period1Y:
		return 365
	default:
		return 30
	}
}

// Interval returns the bar granularity for the period: daily bars for the
// short windows, weekly bars for the one-year view to bound response size.
func (p ChartPeriod) Interval() string {
	if p == Period1Y {
		return "1wk"
	}
	return "1d"
}

// NormalizeTicker uppercases and trims a ticker symbol. Tickers unknown to
// the reference catalog are still accepted and passed through.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
