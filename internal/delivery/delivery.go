// Package delivery defines the contract every transport entry point fulfils.
package delivery

import "context"

// Delivery is a long-running transport server, started by the application
// entry point and stopped through its lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
