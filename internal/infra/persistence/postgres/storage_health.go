package postgres

import (
	"context"

	"superprecios/internal/domain/lifecycle"
	"superprecios/internal/domain/repository"
	"superprecios/internal/errors"

	"gorm.io/gorm"
)

// storageHealth implements the repository.StorageHealth interface.
// It doubles as the per-operation readiness probe used by the repositories,
// so "store is down" is detected before a statement is attempted and surfaces
// immediately instead of after a long driver hang.
type storageHealth struct {
	db *gorm.DB
}

// NewStorageHealth is the constructor for storageHealth.
func NewStorageHealth(db *gorm.DB) repository.StorageHealth {
	return &storageHealth{db: db}
}

// Ready pings the database, bounded by the probe timeout.
func (h *storageHealth) Ready(ctx context.Context) error {
	return pingStorage(ctx, h.db)
}

func pingStorage(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(repository.ErrStorageUnavailable, err.Error())
	}

	probeCtx, cancel := context.WithTimeout(ctx, lifecycle.ProbeTimeout)
	defer cancel()

	if err := sqlDB.PingContext(probeCtx); err != nil {
		// The caller's own deadline expiring is a timeout, not unavailability.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return errors.Wrap(repository.ErrStorageUnavailable, err.Error())
	}

	return nil
}
