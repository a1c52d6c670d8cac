// Package history records batch comparison runs in MySQL and serves them back
// over HTTP.
//
// Runs are written once at the end of a batch and never feed into a later
// comparison; every run still fetches both catalogs fresh. The feature is
// disabled when no database is configured.
//
// Routes:
//   - GET /history?limit=N  most recent runs, newest first
//   - GET /history/:id      one run with its rows
package history
