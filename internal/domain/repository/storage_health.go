package repository

import "context"

// StorageHealth reports whether the backing store is reachable and ready.
// The health endpoint exposes this to clients, which poll it to decide
// whether the service is usable.
type StorageHealth interface {
	// Ready probes the backing store. A nil return means the store answered
	// within the probe timeout.
	Ready(ctx context.Context) error
}
