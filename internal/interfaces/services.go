package interfaces

import (
	"context"

	"github.com/agrilens/agrilens/internal/models"
)

// MarketService aggregates upstream market data calls per endpoint.
// Batch operations tolerate individual upstream failures by omission.
type MarketService interface {
	// FetchQuote retrieves a single quote; upstream failure is surfaced.
	FetchQuote(ctx context.Context, ticker string) (*models.Quote, error)

	// FetchQuotes fans out one quote fetch per ticker concurrently and
	// returns only the successful outcomes. It never returns an error for
	// upstream failures: if all fetches fail the result is empty.
	FetchQuotes(ctx context.Context, tickers []string) ([]models.Quote, error)

	// FetchChart retrieves a price history series; upstream failure is surfaced.
	FetchChart(ctx context.Context, ticker string, period models.ChartPeriod) ([]models.ChartPoint, error)

	// FetchFinancials fans out one summary fetch per ticker; failed tickers
	// are dropped from the result.
	FetchFinancials(ctx context.Context, tickers []string) ([]models.Financials, error)

	// RenderChartImage renders the chart series for a ticker as a PNG sparkline.
	RenderChartImage(ctx context.Context, ticker string, period models.ChartPeriod) ([]byte, error)
}

// CommentaryService produces one commentary sentence and one climate-impact
// sentence per ticker via a single batched generation call.
type CommentaryService interface {
	// Generate returns one entry per requested ticker, in request order.
	// An unparseable generation reply degrades the whole batch to
	// placeholder entries; it never returns an error for that reason.
	Generate(ctx context.Context, tickers []string) ([]models.Commentary, error)
}
