// Package market aggregates upstream market data calls for the HTTP layer,
// collapsing per-ticker fan-outs into partial-failure-tolerant batch results.
package market

import (
	"context"

	"github.com/agrilens/agrilens/internal/common"
	"github.com/agrilens/agrilens/internal/interfaces"
	"github.com/agrilens/agrilens/internal/models"
)

// Service implements MarketService over a MarketDataClient.
type Service struct {
	client interfaces.MarketDataClient
	logger *common.Logger
}

// NewService creates a new market aggregation service.
func NewService(client interfaces.MarketDataClient, logger *common.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// FetchQuote retrieves a single quote. Upstream failure is surfaced to the
// caller; there is no retry.
func (s *Service) FetchQuote(ctx context.Context, ticker string) (*models.Quote, error) {
	return s.client.GetQuote(ctx, models.NormalizeTicker(ticker))
}

// FetchQuotes fans out one quote fetch per ticker and returns the successful
// outcomes in request order. Failed tickers are dropped from the result and
// logged; an all-failed batch yields an empty slice, not an error.
func (s *Service) FetchQuotes(ctx context.Context, tickers []string) ([]models.Quote, error) {
	quotes, drops := settleAll(ctx, normalizeAll(tickers), func(ctx context.Context, ticker string) (models.Quote, error) {
		q, err := s.client.GetQuote(ctx, ticker)
		if err != nil {
			return models.Quote{}, err
		}
		return *q, nil
	})

	s.logDrops("quotes", drops)
	return quotes, nil
}

// FetchChart retrieves a price history series for the sanitized period.
func (s *Service) FetchChart(ctx context.Context, ticker string, period models.ChartPeriod) ([]models.ChartPoint, error) {
	return s.client.GetChart(ctx, models.NormalizeTicker(ticker), period)
}

// FetchFinancials fans out one TTM summary fetch per ticker; failed tickers
// are dropped from the result.
func (s *Service) FetchFinancials(ctx context.Context, tickers []string) ([]models.Financials, error) {
	fins, drops := settleAll(ctx, normalizeAll(tickers), func(ctx context.Context, ticker string) (models.Financials, error) {
		f, err := s.client.GetFinancialSummary(ctx, ticker)
		if err != nil {
			return models.Financials{}, err
		}
		return *f, nil
	})

	s.logDrops("financials", drops)
	return fins, nil
}

// RenderChartImage renders the ticker's chart series as a PNG sparkline.
func (s *Service) RenderChartImage(ctx context.Context, ticker string, period models.ChartPeriod) ([]byte, error) {
	ticker = models.NormalizeTicker(ticker)
	points, err := s.client.GetChart(ctx, ticker, period)
	if err != nil {
		return nil, err
	}
	return renderSparkline(ticker, period, points)
}

func (s *Service) logDrops(batch string, drops []Drop) {
	for _, d := range drops {
		s.logger.Warn().
			Str("batch", batch).
			Str("ticker", d.Ticker).
			Err(d.Reason).
			Msg("Dropped ticker from batch result")
	}
}

func normalizeAll(tickers []string) []string {
	out := make([]string, len(tickers))
	for i, t := range tickers {
		out[i] = models.NormalizeTicker(t)
	}
	return out
}

// Ensure Service implements MarketService
var _ interfaces.MarketService = (*Service)(nil)
