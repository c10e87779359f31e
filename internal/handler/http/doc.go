// Package http implements the HTTP transport layer of the application.
//
// It exposes the skill endpoint the voice platform posts to, the version
// endpoint and the middleware around them. Cross-cutting concerns such as
// request tracing, access logging, response compression and panic recovery
// are handled in this package before requests reach the service layer.
//
// Every request to the skill endpoint gets exactly one JSON speech envelope,
// except a wrong HTTP method, which gets 405 with no body.
package http
