package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080" validate:"required,numeric"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// SnapshotTTLSeconds is how long fetched catalogs are reused across requests.
	SnapshotTTLSeconds int `mapstructure:"snapshot_ttl_seconds" default:"60" validate:"gte=0"`
}

// SnapshotTTL returns the catalog reuse window. Zero means every request fetches.
func (c Config) SnapshotTTL() time.Duration {
	if c.SnapshotTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.SnapshotTTLSeconds) * time.Second
}

// AuthEnabled reports whether requests must carry the API key.
func (c Config) AuthEnabled() bool {
	return c.ApiKey != ""
}
