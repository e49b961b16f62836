// Package archive keeps a copy of every inventory snapshot a reconciliation pass
// acted on, so the orders of a pass can be explained after the inventory changed.
//
// Snapshots are JSON documents stored as <prefix>/<UTC time>-<pass id>.json.
// Archiving is best effort: the engine logs archive failures and carries on.
package archive
