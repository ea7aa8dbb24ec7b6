// Package catalog holds the static company reference data: an immutable,
// in-memory table loaded once at process start and shared read-only by all
// requests.
package catalog

import (
	"github.com/agrilens/agrilens/internal/models"
)

// Store provides lookup over the company universe. All operations are pure
// and total; lookups are case-insensitive on ticker.
type Store struct {
	companies []models.Company
	byTicker  map[string]models.Company
}

// NewStore builds a Store over the compiled-in company universe.
func NewStore() *Store {
	return newStore(companies)
}

func newStore(list []models.Company) *Store {
	s := &Store{
		companies: list,
		byTicker:  make(map[string]models.Company, len(list)),
	}
	for _, c := range list {
		s.byTicker[models.NormalizeTicker(c.Ticker)] = c
	}
	return s
}

// GetCompany looks up a company by ticker, case-insensitively.
func (s *Store) GetCompany(ticker string) (models.Company, bool) {
	c, ok := s.byTicker[models.NormalizeTicker(ticker)]
	return c, ok
}

// ListAll returns all companies in insertion order.
func (s *Store) ListAll() []models.Company {
	out := make([]models.Company, len(s.companies))
	copy(out, s.companies)
	return out
}

// Tickers returns the full ticker universe in insertion order. This is the
// default ticker list for batch endpoints when none is requested.
func (s *Store) Tickers() []string {
	out := make([]string, len(s.companies))
	for i, c := range s.companies {
		out[i] = c.Ticker
	}
	return out
}
