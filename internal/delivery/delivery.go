// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a transport-layer server (HTTP, worker, ...) managed by the
// application lifecycle. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
