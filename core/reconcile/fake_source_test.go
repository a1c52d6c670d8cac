package reconcile

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"otc-compare/core/feed"
)

// fakeSource is an in-memory Source.
type fakeSource struct {
	catalog  []feed.CatalogEntry
	listings []feed.ListingReference
	quotes   map[int64][]feed.QuoteEvent
	delay    map[int64]time.Duration

	mu           sync.Mutex
	quoteCalls   []int64
	catalogCalls atomic.Int32
}

func (f *fakeSource) FetchCatalog(ctx context.Context) []feed.CatalogEntry {
	f.catalogCalls.Add(1)
	return f.catalog
}

func (f *fakeSource) FetchListings(ctx context.Context) []feed.ListingReference {
	return f.listings
}

func (f *fakeSource) FetchQuotes(ctx context.Context, listingType string, itemID int64) []feed.QuoteEvent {
	f.mu.Lock()
	f.quoteCalls = append(f.quoteCalls, itemID)
	f.mu.Unlock()

	if d, ok := f.delay[itemID]; ok {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return []feed.QuoteEvent{}
		}
	}
	return f.quotes[itemID]
}

func price(f float64) *float64 {
	return &f
}

var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func minutesAgo(m int) int64 {
	return testNow.Add(-time.Duration(m) * time.Minute).UnixMilli()
}

func testPricing() Config {
	return Config{SBItemID: 114, Tariff: 0.9, EffectiveSurcharge: 0.2, WindowDays: 1}
}
