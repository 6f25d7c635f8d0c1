// Package http implements the HTTP transport layer of the proxy.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as panic recovery, request tracing, access
// logging, metrics, CORS and response compression are handled in this
// package before requests are delegated to the service layer. Service errors
// are translated into HTTP statuses in errors_mapper.go.
package http
