// Package database handles the optional MySQL connection used for run history.
//
// It provides a wrapper around GORM to configure MySQL connections based on the
// application's configuration. The connection is opt-in (database.enabled);
// every caller treats a failed or disabled connection as "no history".
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Run history disabled", zap.Error(err))
//	}
package database
