// Package inventory is the client side of the inventory service, reached through the
// gateway that enforces transport authentication.
//
// The GatewayClient presents a client certificate (and optionally an internal token)
// and verifies the gateway against a configured CA. Construction fails instead of
// downgrading when any of that material is missing or invalid.
//
// # Errors
//
// FetchSnapshot classifies every failure with the reconcile error sentinels:
//   - ErrAuthenticationFailed: HTTP 401/403, or a TLS handshake where either side's
//     certificate was rejected.
//   - ErrUpstreamUnavailable: the request could not complete (dial, timeout, reset).
//   - ErrUpstreamError: any other non-2xx response.
//   - ErrDecode: the body is not a list of {id, sku, quantity, name} items.
//
// # Usage
//
//	client, err := inventory.NewClient(cfg.Gateway)
//	items, err := client.FetchSnapshot(ctx)
package inventory
