// Package delivery defines the entry points that expose the account use cases.
package delivery

import "context"

// Delivery is a long-running server started by the fx invoke in cmd.
type Delivery interface {
	Serve(ctx context.Context) error
}
