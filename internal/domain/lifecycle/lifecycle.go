// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup checks and shutdown of long-lived
// resources (HTTP server drain, database close).
const DefaultTimeout = 10 * time.Second
