// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: API key validation on the X-API-Key header. Disabled when no key is configured.
//   - RayID: Tags every request with a ray id, stored in locals and echoed in X-Ray-ID,
//     so handler and engine logs for one trigger can be correlated.
package middleware
