// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware for the public
// inquiry form endpoint and the authenticated admin surface. Cross-cutting
// concerns such as session loading, request tracing, access logging, and
// panic recovery are handled in this package before requests are delegated
// to the service layer.
package http
