// Package feed retrieves the two upstream price feeds: the Marketplace
// catalog and the Discord OTC listings.
//
// Responses are decoded, flattened so that nested members are addressed by
// dotted paths (e.g. "item_info.item_id"), and then mapped to explicit typed
// records (CatalogEntry, ListingReference, QuoteEvent). Only the consulted
// members are mapped; rows missing a required member are dropped.
//
// # Failure Model
//
// A fetch never returns an error. Timeouts, non-2xx statuses and malformed
// bodies are logged at WARN and produce an empty result, so every lookup
// downstream resolves to "not found".
//
// # Throttling
//
// All requests share one golang.org/x/time/rate limiter, which keeps the
// per-item listing fetches of a batch run under the configured rate.
package feed
