package impl

import (
	"context"
	"log/slog"

	"superprecios/internal/domain/repository"
	"superprecios/internal/usecase"
)

type healthService struct {
	storageHealth repository.StorageHealth
	logger        *slog.Logger
}

// NewHealthService creates a new health service instance
func NewHealthService(storageHealth repository.StorageHealth, logger *slog.Logger) usecase.HealthUsecase {
	return &healthService{
		storageHealth: storageHealth,
		logger:        logger,
	}
}

// StorageReady probes the backing store. The probe itself is bounded, so a
// dead store reports as not-ready quickly rather than hanging the endpoint.
func (s *healthService) StorageReady(ctx context.Context) bool {
	if err := s.storageHealth.Ready(ctx); err != nil {
		s.logger.Warn("Storage readiness probe failed", slog.Any("error", err))

		return false
	}

	return true
}
