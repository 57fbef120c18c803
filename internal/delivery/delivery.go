// Package delivery defines the contract every transport-facing server implements.
package delivery

import "context"

// Delivery is a long-running server (HTTP, worker, ...) managed by the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
