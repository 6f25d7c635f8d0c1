// Package server wires and runs the application's HTTP server.
//
// It provides orchestration of the server lifecycle, including startup,
// signal handling, and graceful shutdown that lets in-flight requests finish
// within the configured timeout.
package server
