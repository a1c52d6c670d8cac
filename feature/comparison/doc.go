// Package comparison exposes the Marketplace vs Discord reconciliation over HTTP.
//
// Routes:
//   - GET /compare/:name?sb_price=  single item, optional manual SB price
//   - GET /compare                   full catalog with a summary
//   - POST /compare/refresh          drop the cached catalog snapshot
//
// Both catalogs are fetched once per snapshot and shared by concurrent
// requests. Per-item Discord quotes are always fetched fresh.
package comparison
