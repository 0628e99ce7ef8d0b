// Package timeouts defines shared timeout constants used by the web service.
package timeouts

import "time"

// APIRequest caps a single backend REST call issued by the gateway.
const APIRequest = 10 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// TelemetryShutdown bounds span flushing when a command exits.
const TelemetryShutdown = 5 * time.Second
