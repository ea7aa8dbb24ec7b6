package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/agrilens/agrilens/internal/common"
	"github.com/agrilens/agrilens/internal/models"
)

// handleQuote handles GET /quote/{ticker}.
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ticker := PathParam(r, "/quote/", "")
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "ticker is required in path")
		return
	}
	ticker = models.NormalizeTicker(ticker)

	quote, err := s.app.MarketService.FetchQuote(r.Context(), ticker)
	if err != nil {
		s.logger.Error().Str("ticker", ticker).Err(err).Msg("Quote fetch failed")
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to fetch quote for %s", ticker))
		return
	}

	WriteJSONCached(w, http.StatusOK, common.CacheTTLQuote, common.CacheSWRShort, quote)
}

// handleQuotes handles GET /quotes?tickers=A,B,C. Without a tickers param the
// full catalog universe is fetched. Partial upstream failure still yields 200
// with the tickers that succeeded.
func (s *Server) handleQuotes(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	tickers := s.tickersParam(r)

	quotes, err := s.app.MarketService.FetchQuotes(r.Context(), tickers)
	if err != nil {
		s.logger.Error().Err(err).Msg("Quote batch failed")
		WriteError(w, http.StatusInternalServerError, "Failed to fetch quotes")
		return
	}

	WriteJSONCached(w, http.StatusOK, common.CacheTTLQuote, common.CacheSWRShort, quotes)
}

// handleChart handles GET /chart/{ticker}?period=1W|1M|3M|1Y.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request, rawTicker string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ticker := models.NormalizeTicker(rawTicker)
	period := models.ParseChartPeriod(r.URL.Query().Get("period"))

	points, err := s.app.MarketService.FetchChart(r.Context(), ticker, period)
	if err != nil {
		s.logger.Error().Str("ticker", ticker).Str("period", string(period)).Err(err).Msg("Chart fetch failed")
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to fetch chart data for %s", ticker))
		return
	}

	WriteJSONCached(w, http.StatusOK, common.CacheTTLChart, common.CacheSWRShort, points)
}

// handleChartImage handles GET /chart/{ticker}/image?period=... and responds
// with a rendered PNG.
func (s *Server) handleChartImage(w http.ResponseWriter, r *http.Request, rawTicker string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ticker := models.NormalizeTicker(rawTicker)
	period := models.ParseChartPeriod(r.URL.Query().Get("period"))

	png, err := s.app.MarketService.RenderChartImage(r.Context(), ticker, period)
	if err != nil {
		s.logger.Error().Str("ticker", ticker).Str("period", string(period)).Err(err).Msg("Chart render failed")
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to render chart for %s", ticker))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", cacheControl(common.CacheTTLChart, common.CacheSWRShort))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// handleFinancials handles GET /financials?tickers=A,B,C.
func (s *Server) handleFinancials(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	tickers := s.tickersParam(r)

	fins, err := s.app.MarketService.FetchFinancials(r.Context(), tickers)
	if err != nil {
		s.logger.Error().Err(err).Msg("Financials batch failed")
		WriteError(w, http.StatusInternalServerError, "Failed to fetch financial data")
		return
	}

	WriteJSONCached(w, http.StatusOK, common.CacheTTLFinancials, common.CacheSWRLong, fins)
}

// handleCommentary handles GET /commentary?tickers=A,B,C.
func (s *Server) handleCommentary(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	if s.app.CommentaryService == nil {
		WriteError(w, http.StatusServiceUnavailable, "Commentary is not configured")
		return
	}

	tickers := s.tickersParam(r)

	entries, err := s.app.CommentaryService.Generate(r.Context(), tickers)
	if err != nil {
		s.logger.Error().Err(err).Msg("Commentary generation failed")
		WriteError(w, http.StatusInternalServerError, "Failed to generate commentary")
		return
	}

	WriteJSONCached(w, http.StatusOK, common.CacheTTLCommentary, common.CacheSWRLong, entries)
}

// handleCompanyList handles GET /api/companies.
func (s *Server) handleCompanyList(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSONCached(w, http.StatusOK, common.CacheTTLCompanies, common.CacheSWRLong, s.app.Catalog.ListAll())
}

// handleCompanyGet handles GET /api/companies/{ticker}.
func (s *Server) handleCompanyGet(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ticker := PathParam(r, "/api/companies/", "")
	if ticker == "" {
		s.handleCompanyList(w, r)
		return
	}

	company, ok := s.app.Catalog.GetCompany(ticker)
	if !ok {
		WriteError(w, http.StatusNotFound, fmt.Sprintf("Unknown company: %s", models.NormalizeTicker(ticker)))
		return
	}

	WriteJSONCached(w, http.StatusOK, common.CacheTTLCompanies, common.CacheSWRLong, company)
}

// tickersParam parses the tickers query parameter, falling back to the full
// catalog universe when absent or empty.
func (s *Server) tickersParam(r *http.Request) []string {
	raw := r.URL.Query().Get("tickers")
	if strings.TrimSpace(raw) == "" {
		return s.app.Catalog.Tickers()
	}

	var tickers []string
	for _, part := range strings.Split(raw, ",") {
		if t := models.NormalizeTicker(part); t != "" {
			tickers = append(tickers, t)
		}
	}
	if len(tickers) == 0 {
		return s.app.Catalog.Tickers()
	}
	return tickers
}
