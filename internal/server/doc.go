// Package server wires and runs the application's HTTP transport.
//
// It owns the listener (optionally capped to a number of concurrent
// connections), request timeouts, signal handling and graceful shutdown.
package server
