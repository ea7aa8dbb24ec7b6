package yahoo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agrilens/agrilens/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(
		WithBaseURL(srv.URL),
		WithRateLimit(1000),
	)
}

func TestGetQuoteNormalizesMissingFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v7/finance/quote" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("symbols"); got != "ADM" {
			t.Errorf("symbols = %q, want ADM", got)
		}
		// Only price present; everything else omitted upstream.
		fmt.Fprint(w, `{"quoteResponse":{"result":[{"symbol":"ADM","regularMarketPrice":58.42}]}}`)
	})

	q, err := c.GetQuote(context.Background(), "adm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.Ticker != "ADM" {
		t.Errorf("ticker = %q, want ADM", q.Ticker)
	}
	if q.Price != 58.42 {
		t.Errorf("price = %v, want 58.42", q.Price)
	}
	if q.Change != 0 || q.ChangePercent != 0 || q.MarketCap != 0 || q.Volume != 0 {
		t.Errorf("missing fields not zero-normalized: %+v", q)
	}
	if q.Currency != "USD" {
		t.Errorf("currency = %q, want USD default", q.Currency)
	}
}

func TestGetQuoteKeepsReportedCurrency(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteResponse":{"result":[{"symbol":"FFARM.AS","regularMarketPrice":21.1,"currency":"EUR"}]}}`)
	})

	q, err := c.GetQuote(context.Background(), "FFARM.AS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Currency != "EUR" {
		t.Errorf("currency = %q, want EUR", q.Currency)
	}
}

func TestGetQuoteEmptyResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteResponse":{"result":[]}}`)
	})

	_, err := c.GetQuote(context.Background(), "ZZZZ")
	if err == nil {
		t.Fatal("expected error for empty result")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
}

func TestGetQuoteUpstreamStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	})

	_, err := c.GetQuote(context.Background(), "ADM")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", apiErr.StatusCode)
	}
}

func TestGetChartNormalizesNullBars(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("interval"); got != "1d" {
			t.Errorf("interval = %q, want 1d", got)
		}
		fmt.Fprint(w, `{"chart":{"result":[{"timestamp":[1735689600,1735776000,1735862400],"indicators":{"quote":[{"close":[100.5,null,102.0],"volume":[1200,null,1500]}]}}]}}`)
	})

	points, err := c.GetChart(context.Background(), "GIS", models.Period1M)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if points[0].Date != "2025-01-01" {
		t.Errorf("date = %q, want 2025-01-01", points[0].Date)
	}
	if points[1].Close != 0 || points[1].Volume != 0 {
		t.Errorf("null bar not zero-normalized: %+v", points[1])
	}
	if points[2].Close != 102.0 {
		t.Errorf("close = %v, want 102.0", points[2].Close)
	}
}

func TestGetChartWeeklyIntervalForYear(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("interval"); got != "1wk" {
			t.Errorf("interval = %q, want 1wk", got)
		}
		fmt.Fprint(w, `{"chart":{"result":[]}}`)
	})

	points, err := c.GetChart(context.Background(), "GIS", models.Period1Y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if points == nil || len(points) != 0 {
		t.Errorf("empty result should be an empty slice, got %v", points)
	}
}

func TestGetFinancialSummaryNullableFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteSummary":{"result":[{"financialData":{"totalRevenue":{"raw":85500000000}}}]}}`)
	})

	fin, err := c.GetFinancialSummary(context.Background(), "ADM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fin.TTMRevenue == nil || *fin.TTMRevenue != 85.5e9 {
		t.Errorf("revenue = %v, want 85.5e9", fin.TTMRevenue)
	}
	if fin.TTMProfitMargin != nil {
		t.Errorf("missing margin should stay null, got %v", *fin.TTMProfitMargin)
	}
}

func TestGetFinancialSummaryInBodyError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteSummary":{"result":[],"error":{"code":"Not Found","description":"No fundamentals data"}}}`)
	})

	_, err := c.GetFinancialSummary(context.Background(), "ZZZZ")
	if err == nil {
		t.Fatal("expected error from in-body error payload")
	}
}
