// Package integrity provides health checks for the collaborators of a reconciliation pass.
//
// # Checks Provided
//
//   - Ledger: pings the ledger database.
//   - Gateway: fetches one inventory snapshot over mTLS, reporting the item count or the failure kind.
//   - Archive: verifies the archive bucket exists and reports the latest snapshot key.
//     Reported as "disabled" when archiving is off.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks. 503 when any check fails.
//   - GET /integrity/ledger
//   - GET /integrity/gateway
//   - GET /integrity/archive
package integrity
