package interfaces

import (
	"context"

	"premarket-report/internal/types"
)

// QuoteNewsFetcher retrieves news, forex, crypto, and market status.
// It never fails: categories degrade independently to empty defaults.
type QuoteNewsFetcher interface {
	Fetch(ctx context.Context) types.QuoteNews
}

// SnapshotFetcher retrieves the per-instrument market snapshot.
// It never fails: unpriceable instruments are omitted from their category.
type SnapshotFetcher interface {
	Snapshot(ctx context.Context) types.MarketSnapshot
}
