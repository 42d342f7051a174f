// Package app wires the report server together: configuration,
// logging, services, router, and the HTTP server lifecycle with
// graceful shutdown.
package app
