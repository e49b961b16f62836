// Package reconcile implements the replenishment reconciliation engine.
//
// A reconciliation pass reads a full inventory snapshot from a Source, selects every
// item whose on-hand quantity is strictly below a threshold, and records one
// replenishment order per selected item in a Ledger, asking for threshold - quantity
// units.
//
// # Consistency
//
// The inventory system and the ledger are independent stores with no shared
// transaction. A pass trusts its snapshot and does not re-read quantities before
// inserting orders. Inserts are individually atomic; a failed insert aborts the rest
// of the pass without removing the orders already written.
//
// # Idempotence
//
// Passes are not deduplicated. Running a pass twice against an unchanged,
// under-stocked inventory records two orders per item, and overlapping passes
// (scheduled and manual triggers) may race. Callers that retry a failed pass must
// expect some orders from the failed attempt to exist already.
//
// # Errors
//
// Every failure is classified as one of AuthenticationFailed, UpstreamUnavailable,
// UpstreamError, DecodeError (snapshot side) or StorageUnavailable (ledger side).
// Use errors.Is with the Err* sentinels or KindOf to tell them apart.
package reconcile
