// Package http implements the HTTP transport of the stub inventory backend.
//
// It wires chi routes under /api/v1 that mirror the real inventory API, the
// refresh-cookie login flow, and middleware for tracing, access logging,
// Prometheus counters, gzip and bearer authentication. Handlers delegate to
// [mockapi.Backend].
package http
