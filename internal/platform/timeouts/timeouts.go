// Package timeouts defines shared timeout constants used across services.
// Centralizing these values prevents drift between service boundaries and
// makes the durations discoverable.
package timeouts

import "time"

// APIRequest caps the time allowed for a single SuperClip API request made
// on behalf of an operator.
const APIRequest = 10 * time.Second

// APIClient caps an entire SuperClip HTTP exchange, including body reads.
const APIClient = 15 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
