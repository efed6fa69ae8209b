package impl

import (
	"context"
	"testing"
	"time"

	"superprecios/internal/domain/entity"
	domainerrors "superprecios/internal/domain/errors"
	"superprecios/internal/domain/repository"
	mockRepo "superprecios/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSpecialPriceService_ListSpecialPrices_All(t *testing.T) {
	mockSpecialRepo := mockRepo.NewMockSpecialPriceRepository(t)
	service := NewSpecialPriceService(mockSpecialRepo, newTestConfig())

	ctx := context.Background()
	records := []*entity.SpecialPrice{
		{ID: uuid.New(), UserID: "user-2", ProductID: "p3", CreatedAt: time.Now()},
		{ID: uuid.New(), UserID: "user-1", ProductID: "p1", CreatedAt: time.Now().Add(-time.Hour)},
	}

	mockSpecialRepo.EXPECT().
		FindAll(mock.Anything).
		Return(records, nil)

	specialPrices, err := service.ListSpecialPrices(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, records, specialPrices)
}

func TestSpecialPriceService_ListSpecialPrices_ByUser(t *testing.T) {
	mockSpecialRepo := mockRepo.NewMockSpecialPriceRepository(t)
	service := NewSpecialPriceService(mockSpecialRepo, newTestConfig())

	ctx := context.Background()
	records := []*entity.SpecialPrice{
		{ID: uuid.New(), UserID: "user-1", ProductID: "p1"},
	}

	mockSpecialRepo.EXPECT().
		FindByUser(mock.Anything, "user-1").
		Return(records, nil)

	specialPrices, err := service.ListSpecialPrices(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, specialPrices, 1)
	assert.Equal(t, "user-1", specialPrices[0].UserID)
}

func TestSpecialPriceService_CheckSpecialPrice_Found(t *testing.T) {
	mockSpecialRepo := mockRepo.NewMockSpecialPriceRepository(t)
	service := NewSpecialPriceService(mockSpecialRepo, newTestConfig())

	ctx := context.Background()
	record := &entity.SpecialPrice{ID: uuid.New(), UserID: "user-1", ProductID: "p1", Price: 80.0}

	mockSpecialRepo.EXPECT().
		FindByUserAndProduct(mock.Anything, "user-1", "p1").
		Return(record, nil)

	specialPrice, exists, err := service.CheckSpecialPrice(ctx, "user-1", "p1")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, record, specialPrice)
}

func TestSpecialPriceService_CheckSpecialPrice_NotFoundIsNotAnError(t *testing.T) {
	mockSpecialRepo := mockRepo.NewMockSpecialPriceRepository(t)
	service := NewSpecialPriceService(mockSpecialRepo, newTestConfig())

	ctx := context.Background()

	mockSpecialRepo.EXPECT().
		FindByUserAndProduct(mock.Anything, "user-1", "p1").
		Return(nil, repository.ErrSpecialPriceNotFound)

	specialPrice, exists, err := service.CheckSpecialPrice(ctx, "user-1", "p1")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Nil(t, specialPrice)
}

func TestSpecialPriceService_CheckSpecialPrice_StorageUnavailable(t *testing.T) {
	mockSpecialRepo := mockRepo.NewMockSpecialPriceRepository(t)
	service := NewSpecialPriceService(mockSpecialRepo, newTestConfig())

	ctx := context.Background()

	mockSpecialRepo.EXPECT().
		FindByUserAndProduct(mock.Anything, "user-1", "p1").
		Return(nil, errors.Wrap(repository.ErrStorageUnavailable, "ping failed"))

	_, exists, err := service.CheckSpecialPrice(ctx, "user-1", "p1")
	assert.False(t, exists)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORAGE_UNAVAILABLE", appErr.ErrorCode())
}

func TestSpecialPriceService_DeleteSpecialPrice_Existing(t *testing.T) {
	mockSpecialRepo := mockRepo.NewMockSpecialPriceRepository(t)
	service := NewSpecialPriceService(mockSpecialRepo, newTestConfig())

	ctx := context.Background()
	id := uuid.New()

	mockSpecialRepo.EXPECT().
		Delete(mock.Anything, id).
		Return(true, nil)

	deleted, err := service.DeleteSpecialPrice(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestSpecialPriceService_DeleteSpecialPrice_UnknownIsNotAnError(t *testing.T) {
	mockSpecialRepo := mockRepo.NewMockSpecialPriceRepository(t)
	service := NewSpecialPriceService(mockSpecialRepo, newTestConfig())

	ctx := context.Background()
	id := uuid.New()

	mockSpecialRepo.EXPECT().
		Delete(mock.Anything, id).
		Return(false, nil)

	deleted, err := service.DeleteSpecialPrice(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestSpecialPriceService_DeleteSpecialPrice_StorageTimeout(t *testing.T) {
	mockSpecialRepo := mockRepo.NewMockSpecialPriceRepository(t)
	service := NewSpecialPriceService(mockSpecialRepo, newTestConfig())

	ctx := context.Background()
	id := uuid.New()

	mockSpecialRepo.EXPECT().
		Delete(mock.Anything, id).
		Return(false, errors.Wrap(context.DeadlineExceeded, "delete special price"))

	deleted, err := service.DeleteSpecialPrice(ctx, id)
	assert.False(t, deleted)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORAGE_TIMEOUT", appErr.ErrorCode())
}
