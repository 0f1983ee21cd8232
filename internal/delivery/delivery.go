// Package delivery holds the inbound adapters of the service.
package delivery

import "context"

// Delivery is a long-running server started by the binaries in cmd.
type Delivery interface {
	Serve(ctx context.Context) error
}
