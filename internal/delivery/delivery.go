// Package delivery defines the contract every transport entrypoint fulfills.
package delivery

import "context"

// Delivery is a long-running transport endpoint, such as the HTTP server.
// Serve blocks until the endpoint stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
