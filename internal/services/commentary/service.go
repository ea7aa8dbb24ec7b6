// Package commentary generates one commentary sentence and one
// climate-impact sentence per ticker by combining best-effort financial
// snapshots into a single batched LLM call and parsing a structured reply.
package commentary

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"github.com/agrilens/agrilens/internal/catalog"
	"github.com/agrilens/agrilens/internal/common"
	"github.com/agrilens/agrilens/internal/interfaces"
	"github.com/agrilens/agrilens/internal/models"
)

const (
	placeholderCommentary = "Commentary unavailable."
	placeholderClimate    = "Data unavailable."

	maxConcurrentSnapshots = 8
)

// snapshot is the per-ticker context fed into the prompt. Every financial
// field is best-effort: a failed sub-fetch leaves it nil and the prompt
// simply omits that fragment.
type snapshot struct {
	Ticker          string
	Name            string
	Sector          string
	ChangePercent   *float64
	MarketCap       *float64
	TTMRevenue      *float64
	TTMProfitMargin *float64
}

// Service implements CommentaryService.
type Service struct {
	market  interfaces.MarketDataClient
	gen     interfaces.GenerativeClient
	catalog *catalog.Store
	logger  *common.Logger
}

// NewService creates a new commentary service.
func NewService(market interfaces.MarketDataClient, gen interfaces.GenerativeClient, cat *catalog.Store, logger *common.Logger) *Service {
	return &Service{
		market:  market,
		gen:     gen,
		catalog: cat,
		logger:  logger,
	}
}

// Generate returns one Commentary per requested ticker. The generation call
// is a single round trip for the whole batch; a reply that cannot be parsed
// degrades every ticker to placeholder text (the reply is not separable), by
// design. Only a failed generation call itself is surfaced as an error.
func (s *Service) Generate(ctx context.Context, tickers []string) ([]models.Commentary, error) {
	snapshots := s.buildSnapshots(ctx, tickers)

	prompt := buildPrompt(snapshots)

	raw, err := s.gen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	parsed, err := parseReply(raw)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Int("tickers", len(snapshots)).
			Msg("Unparseable commentary reply, degrading batch to placeholders")
		return placeholders(snapshots), nil
	}

	return parsed, nil
}

// buildSnapshots assembles per-ticker prompt context. The quote and summary
// sub-fetches run in parallel and fail independently; neither failure aborts
// the ticker.
func (s *Service) buildSnapshots(ctx context.Context, tickers []string) []snapshot {
	snapshots := make([]snapshot, len(tickers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSnapshots)
	for i, raw := range tickers {
		g.Go(func() error {
			snapshots[i] = s.buildSnapshot(ctx, raw)
			return nil
		})
	}
	g.Wait()

	return snapshots
}

func (s *Service) buildSnapshot(ctx context.Context, raw string) snapshot {
	ticker := models.NormalizeTicker(raw)

	snap := snapshot{
		Ticker: ticker,
		Name:   ticker,
		Sector: "unknown",
	}
	if company, ok := s.catalog.GetCompany(ticker); ok {
		snap.Name = company.Name
		snap.Sector = string(company.Sector)
	}

	var (
		quote *models.Quote
		fin   *models.Financials
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := s.market.GetQuote(ctx, ticker)
		if err != nil {
			s.logger.Debug().Str("ticker", ticker).Err(err).Msg("Snapshot quote fetch failed")
			return nil
		}
		quote = q
		return nil
	})
	g.Go(func() error {
		f, err := s.market.GetFinancialSummary(ctx, ticker)
		if err != nil {
			s.logger.Debug().Str("ticker", ticker).Err(err).Msg("Snapshot summary fetch failed")
			return nil
		}
		fin = f
		return nil
	})
	g.Wait()

	if quote != nil {
		snap.ChangePercent = &quote.ChangePercent
		snap.MarketCap = &quote.MarketCap
	}
	if fin != nil {
		snap.TTMRevenue = fin.TTMRevenue
		snap.TTMProfitMargin = fin.TTMProfitMargin
	}

	return snap
}

// parseReply strips any markdown fences, parses the JSON array, and
// truncates each field to its first sentence to guarantee the one-sentence
// contract regardless of what the generator returned.
func parseReply(raw string) ([]models.Commentary, error) {
	clean := stripFences(raw)

	var parsed []models.Commentary
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return nil, err
	}

	for i := range parsed {
		parsed[i].Ticker = models.NormalizeTicker(parsed[i].Ticker)
		parsed[i].Commentary = firstSentence(parsed[i].Commentary)
		parsed[i].ClimateImpact = firstSentence(parsed[i].ClimateImpact)
	}

	return parsed, nil
}

// placeholders builds the whole-batch fallback, keyed to the requested
// tickers in request order.
func placeholders(snapshots []snapshot) []models.Commentary {
	out := make([]models.Commentary, len(snapshots))
	for i, snap := range snapshots {
		out[i] = models.Commentary{
			Ticker:        snap.Ticker,
			Commentary:    placeholderCommentary,
			ClimateImpact: placeholderClimate,
		}
	}
	return out
}

// Ensure Service implements CommentaryService
var _ interfaces.CommentaryService = (*Service)(nil)
