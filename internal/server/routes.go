package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/agrilens/agrilens/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Reference data
	mux.HandleFunc("/api/companies/", s.handleCompanyGet)
	mux.HandleFunc("/api/companies", s.handleCompanyList)

	// Market data
	mux.HandleFunc("/quote/", s.handleQuote)
	mux.HandleFunc("/quotes", s.handleQuotes)
	mux.HandleFunc("/chart/", s.routeChart)
	mux.HandleFunc("/financials", s.handleFinancials)

	// Commentary
	mux.HandleFunc("/commentary", s.handleCommentary)
}

// routeChart dispatches /chart/{ticker} and /chart/{ticker}/image.
func (s *Server) routeChart(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/chart/")
	if path == "" {
		WriteError(w, http.StatusBadRequest, "ticker is required in path")
		return
	}

	if ticker, ok := strings.CutSuffix(path, "/image"); ok {
		s.handleChartImage(w, r, ticker)
		return
	}

	s.handleChart(w, r, path)
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.app.StartupTime).Round(time.Second).String(),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}
