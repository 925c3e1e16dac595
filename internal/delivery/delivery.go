// Package delivery defines the contract shared by every inbound adapter.
package delivery

import "context"

// Delivery is a long-running inbound adapter, such as an HTTP server.
// Serve blocks until the adapter stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
