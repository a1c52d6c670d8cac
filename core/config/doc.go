// Package config provides configuration management for otc-compare.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each
// section and are validated with go-playground/validator.
//
// # Configuration Structure
//
//   - Feed: Marketplace and Discord endpoints, timeouts, rate limit
//   - Pricing: SB reference item, tariff, effective surcharge, window days
//   - Batch: worker count and overall deadline of the full-catalog run
//   - Report: output directory, file prefix, upload toggle
//   - Server: HTTP port, API key, snapshot TTL
//   - Storage: S3/MinIO credentials and bucket for report uploads
//   - Database: optional MySQL run history
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Pricing.Tariff)
package config
