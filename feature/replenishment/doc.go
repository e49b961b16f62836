// Package replenishment is the HTTP trigger surface of the reconciliation engine.
//
// # HTTP Endpoints
//
//   - POST /run-check : Runs one pass and returns the orders it created (supports ?threshold=N).
//   - GET /orders : Lists every recorded order, oldest first.
//   - DELETE /orders : Clears the ledger and returns {"deletedCount": N}.
//
// Failures carry the failure kind in the "error" field of the body. Gateway failures map
// to 502 (authentication, upstream error, decode) or 503 (unreachable); ledger failures map to 500.
package replenishment
