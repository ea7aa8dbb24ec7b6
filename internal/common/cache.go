package common

import "time"

// Cache lifetimes for API responses. These drive the Cache-Control headers
// on the HTTP surface; the server itself holds no cross-request cache.
const (
	// Quotes and charts move with the market.
	CacheTTLQuote = 5 * time.Minute
	CacheTTLChart = 5 * time.Minute

	// Financial summaries and commentary change on a much slower cycle.
	CacheTTLFinancials = 1 * time.Hour
	CacheTTLCommentary = 1 * time.Hour

	// Reference data only changes at deploy time.
	CacheTTLCompanies = 24 * time.Hour

	// Stale-while-revalidate windows paired with the TTLs above.
	CacheSWRShort = 1 * time.Minute
	CacheSWRLong  = 5 * time.Minute
)
