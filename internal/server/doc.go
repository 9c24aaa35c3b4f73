// Package server runs the stub backend's HTTP server, including signal
// handling and graceful shutdown.
package server
