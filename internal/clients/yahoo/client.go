// Package yahoo provides a client for the Yahoo Finance quote API
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/agrilens/agrilens/internal/common"
	"github.com/agrilens/agrilens/internal/interfaces"
	"github.com/agrilens/agrilens/internal/models"
)

const (
	DefaultBaseURL   = "https://query1.finance.yahoo.com"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5 // requests per second

	userAgent = "Mozilla/5.0 (compatible; agrilens/1.0)"
)

// Client implements the MarketDataClient interface
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Yahoo Finance client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an upstream API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("yahoo API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// get performs a rate-limited GET request
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug().Str("url", c.baseURL+path).Msg("Yahoo API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// quoteResponse mirrors the /v7/finance/quote payload. Numeric fields are
// pointers: Yahoo omits any it has no value for.
type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol                     string   `json:"symbol"`
			RegularMarketPrice         *float64 `json:"regularMarketPrice"`
			RegularMarketChange        *float64 `json:"regularMarketChange"`
			RegularMarketChangePercent *float64 `json:"regularMarketChangePercent"`
			MarketCap                  *float64 `json:"marketCap"`
			RegularMarketVolume        *int64   `json:"regularMarketVolume"`
			FiftyTwoWeekHigh           *float64 `json:"fiftyTwoWeekHigh"`
			FiftyTwoWeekLow            *float64 `json:"fiftyTwoWeekLow"`
			Currency                   string   `json:"currency"`
		} `json:"result"`
		Error *apiErrorBody `json:"error"`
	} `json:"quoteResponse"`
}

type apiErrorBody struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// GetQuote retrieves a normalized quote for one ticker. Missing numeric
// fields are substituted with 0 and a missing currency with "USD"; this is
// the normalization policy, not a data-quality signal.
func (c *Client) GetQuote(ctx context.Context, ticker string) (*models.Quote, error) {
	ticker = models.NormalizeTicker(ticker)

	params := url.Values{}
	params.Set("symbols", ticker)

	var resp quoteResponse
	if err := c.get(ctx, "/v7/finance/quote", params, &resp); err != nil {
		return nil, err
	}

	if resp.QuoteResponse.Error != nil {
		return nil, &APIError{
			StatusCode: http.StatusOK,
			Message:    resp.QuoteResponse.Error.Description,
			Endpoint:   "/v7/finance/quote",
		}
	}
	if len(resp.QuoteResponse.Result) == 0 {
		return nil, &APIError{
			StatusCode: http.StatusOK,
			Message:    fmt.Sprintf("no quote result for %s", ticker),
			Endpoint:   "/v7/finance/quote",
		}
	}

	r := resp.QuoteResponse.Result[0]
	currency := r.Currency
	if currency == "" {
		currency = "USD"
	}

	return &models.Quote{
		Ticker:           ticker,
		Price:            deref(r.RegularMarketPrice),
		Change:           deref(r.RegularMarketChange),
		ChangePercent:    deref(r.RegularMarketChangePercent),
		MarketCap:        deref(r.MarketCap),
		Volume:           derefInt(r.RegularMarketVolume),
		FiftyTwoWeekHigh: deref(r.FiftyTwoWeekHigh),
		FiftyTwoWeekLow:  deref(r.FiftyTwoWeekLow),
		Currency:         currency,
	}, nil
}

// chartResponse mirrors the /v8/finance/chart payload. Close and volume
// arrays carry nulls for halted or missing bars.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *apiErrorBody `json:"error"`
	} `json:"chart"`
}

// GetChart retrieves price history for the period's trailing window, ending
// now. Bars come back chronological ascending; null close/volume normalize
// to 0.
func (c *Client) GetChart(ctx context.Context, ticker string, period models.ChartPeriod) ([]models.ChartPoint, error) {
	ticker = models.NormalizeTicker(ticker)

	now := time.Now()
	start := now.AddDate(0, 0, -period.Days())

	params := url.Values{}
	params.Set("period1", strconv.FormatInt(start.Unix(), 10))
	params.Set("period2", strconv.FormatInt(now.Unix(), 10))
	params.Set("interval", period.Interval())

	path := fmt.Sprintf("/v8/finance/chart/%s", ticker)

	var resp chartResponse
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, err
	}

	if resp.Chart.Error != nil {
		return nil, &APIError{
			StatusCode: http.StatusOK,
			Message:    resp.Chart.Error.Description,
			Endpoint:   path,
		}
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return []models.ChartPoint{}, nil
	}

	r := resp.Chart.Result[0]
	bars := r.Indicators.Quote[0]

	points := make([]models.ChartPoint, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		p := models.ChartPoint{
			Date: time.Unix(ts, 0).UTC().Format("2006-01-02"),
		}
		if i < len(bars.Close) {
			p.Close = deref(bars.Close[i])
		}
		if i < len(bars.Volume) {
			p.Volume = derefInt(bars.Volume[i])
		}
		points = append(points, p)
	}

	return points, nil
}

// summaryResponse mirrors the /v10/finance/quoteSummary payload for the
// financialData module.
type summaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			FinancialData struct {
				TotalRevenue  *rawValue `json:"totalRevenue"`
				ProfitMargins *rawValue `json:"profitMargins"`
			} `json:"financialData"`
		} `json:"result"`
		Error *apiErrorBody `json:"error"`
	} `json:"quoteSummary"`
}

type rawValue struct {
	Raw *float64 `json:"raw"`
}

// GetFinancialSummary retrieves the TTM revenue and profit margin. Either
// figure may be absent upstream; absent figures stay null rather than being
// zero-filled.
func (c *Client) GetFinancialSummary(ctx context.Context, ticker string) (*models.Financials, error) {
	ticker = models.NormalizeTicker(ticker)

	params := url.Values{}
	params.Set("modules", "financialData")

	path := fmt.Sprintf("/v10/finance/quoteSummary/%s", ticker)

	var resp summaryResponse
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, err
	}

	if resp.QuoteSummary.Error != nil {
		return nil, &APIError{
			StatusCode: http.StatusOK,
			Message:    resp.QuoteSummary.Error.Description,
			Endpoint:   path,
		}
	}

	fin := &models.Financials{Ticker: ticker}
	if len(resp.QuoteSummary.Result) > 0 {
		fd := resp.QuoteSummary.Result[0].FinancialData
		if fd.TotalRevenue != nil {
			fin.TTMRevenue = fd.TotalRevenue.Raw
		}
		if fd.ProfitMargins != nil {
			fin.TTMProfitMargin = fd.ProfitMargins.Raw
		}
	}

	return fin, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefInt(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

// Ensure Client implements MarketDataClient
var _ interfaces.MarketDataClient = (*Client)(nil)
