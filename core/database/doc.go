// Package database handles the connection to the replenishment ledger database.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) that configures
// MySQL or SQLite connections based on the application's configuration. MySQL is the
// production backend; SQLite serves single-node deployments and local runs.
//
// # Connect
//
// Connect opens the database, applies pool settings and verifies the connection with a
// ping bounded by the configured timeout. Schema management belongs to the ledger package.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
