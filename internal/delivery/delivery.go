// Package delivery defines the entrypoint contract each transport implements.
package delivery

import "context"

// Delivery is a serving surface started by main after the Fx graph is built.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
