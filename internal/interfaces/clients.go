// Package interfaces defines service contracts for Agrilens
package interfaces

import (
	"context"

	"github.com/agrilens/agrilens/internal/models"
)

// MarketDataClient provides access to the upstream quote/history provider.
// Implementations normalize provider field names and absent-value
// conventions; they do not retry.
type MarketDataClient interface {
	// GetQuote retrieves a normalized real-time quote for one ticker.
	GetQuote(ctx context.Context, ticker string) (*models.Quote, error)

	// GetChart retrieves a chronological-ascending price history for the
	// period's trailing window.
	GetChart(ctx context.Context, ticker string, period models.ChartPeriod) ([]models.ChartPoint, error)

	// GetFinancialSummary retrieves the TTM revenue and profit margin.
	GetFinancialSummary(ctx context.Context, ticker string) (*models.Financials, error)
}

// GenerativeClient provides access to the upstream text-generation provider.
type GenerativeClient interface {
	// GenerateContent generates text from a prompt in a single round trip.
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
