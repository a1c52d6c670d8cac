// Package reconcile joins the Marketplace catalog with the Discord OTC
// listings and decides, per item, whether it is cheaper to buy with gold or
// to trade SB for it.
//
// # Architecture
//
// 1. Run: the per-run context. It fetches both catalogs once, indexes them
//    (Catalog, Listings) and resolves the SB reference price once. Every
//    comparison of the run uses that single reference price.
//
// 2. Quote selection: SelectQuotes filters an item's listing history to the
//    lookback window (inclusive boundary) and picks the latest and the lowest
//    quote. First-seen wins on ties.
//
// 3. Pricing: Config.Price derives the comparable figures:
//
//	sb_required = round2(marketplace_gold / (sb_gold * tariff))
//	discord_gold = discord_sb * sb_gold
//	gold_delta  = trunc(marketplace_gold - discord_sb * sb_gold * (tariff + surcharge))
//	sb_delta    = sb_required - discord_sb   (> 0 means Discord is cheaper)
//
//    A record missing any input is Undetermined and its dependent members stay nil.
//
// 4. SnapshotCache: TTL-based reuse of a Run with stampede protection, used by the HTTP API.
//
// # Batch Runs
//
// CompareAll fans the per-item listing fetches out over a bounded worker pool.
// Output order always matches catalog order, one item's fetch failure never
// affects another, and an overall deadline bounds the run.
package reconcile
