package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"superprecios/internal/domain/repository"
	mockRepo "superprecios/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHealthService_StorageReady(t *testing.T) {
	mockHealth := mockRepo.NewMockStorageHealth(t)
	service := NewHealthService(mockHealth, newDiscardLogger())

	ctx := context.Background()

	mockHealth.EXPECT().
		Ready(mock.Anything).
		Return(nil)

	assert.True(t, service.StorageReady(ctx))
}

func TestHealthService_StorageNotReady(t *testing.T) {
	mockHealth := mockRepo.NewMockStorageHealth(t)
	service := NewHealthService(mockHealth, newDiscardLogger())

	ctx := context.Background()

	mockHealth.EXPECT().
		Ready(mock.Anything).
		Return(errors.Wrap(repository.ErrStorageUnavailable, "ping failed"))

	assert.False(t, service.StorageReady(ctx))
}
