// Package scheduler runs reconciliation passes periodically.
//
// The Trigger is the scheduled-job flavor of the reconciliation trigger; the HTTP
// and CLI surfaces are the operator flavor. A failed scheduled pass is logged and the
// next tick runs a fresh, independent pass.
package scheduler
