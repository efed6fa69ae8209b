package usecase

import "context"

// HealthUsecase reports service health to the delivery layer.
type HealthUsecase interface {
	// StorageReady reports whether the backing store answered a bounded probe.
	StorageReady(ctx context.Context) bool
}
