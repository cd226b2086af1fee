// Package api handles incoming HTTP requests, request validation and response
// formatting for the catalog. It acts as an adapter between HTTP clients and
// the services in internal/service.
//
// Validation failures are answered with 422 and a body mapping each invalid
// field to its messages. Other failures carry a safe message and the trace ID
// of the request; details are only logged, after redaction.
package api
