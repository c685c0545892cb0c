// Package transport implements the HTTP binding to the tournament backend.
//
// [Backend] is the narrow interface the client facade talks through; the
// resty-based implementation created by [NewBackend] is the only production
// binding. Every non-2xx response is translated into one of the package's
// sentinel errors so callers can branch with errors.Is without touching
// HTTP status codes.
package transport
