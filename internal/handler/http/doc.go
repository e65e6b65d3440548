// Package http implements the HTTP transport layer of the court-fund server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Authentication, the admin role check, request tracing, access
// logging, Prometheus metrics and response compression are handled in this
// package before requests are delegated to the service layer.
package http
