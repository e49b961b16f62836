// Package ledger persists replenishment orders.
//
// The ledger is append-mostly: orders are inserted by reconciliation passes, listed
// any number of times and removed only by a bulk clear. There is no update or
// per-order delete. Every failure is reported as reconcile.ErrStorageUnavailable.
package ledger
