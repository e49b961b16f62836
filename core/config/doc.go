// Package config provides configuration management for the replenishment service.
//
// Values come from environment variables, optionally seeded from a .env file, with
// defaults taken from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and the scheduled trigger interval
//   - Log: level and format
//   - Database: ledger driver (mysql or sqlite) and connection details
//   - Gateway: inventory gateway URL, client certificate, trust anchor and token
//   - Reconcile: threshold and pass timeout
//   - Storage: MinIO/S3 snapshot archive
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Reconcile.Threshold)
package config
