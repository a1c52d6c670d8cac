// Package server holds the HTTP server configuration.
//
// The Config struct defines the HTTP port, the API key and how long fetched
// catalogs are reused between API requests. The fiber app itself is built by
// the start command.
package server
