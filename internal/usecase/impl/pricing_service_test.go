package impl

import (
	"context"
	"testing"
	"time"

	"superprecios/config"
	"superprecios/internal/domain/entity"
	domainerrors "superprecios/internal/domain/errors"
	"superprecios/internal/domain/repository"
	mockRepo "superprecios/internal/mocks/repository"
	"superprecios/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Pricing: &config.PricingConfig{
			QueryTimeout: time.Second,
		},
	}
}

func TestPricingService_ListResolvedProducts_AppliesSpecialPrice(t *testing.T) {
	mockSpecialRepo := mockRepo.NewMockSpecialPriceRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := NewPricingService(mockSpecialRepo, mockCatalogRepo, newTestConfig())

	ctx := context.Background()
	products := []*entity.Product{
		{ID: "p1", Name: "Laptop", Price: 100.0},
		{ID: "p2", Name: "Mouse", Price: 50.0},
	}
	specialPrices := []*entity.SpecialPrice{
		{UserID: "user-1", ProductID: "p1", Price: 80.0},
	}

	mockCatalogRepo.EXPECT().
		FindAllProducts(mock.Anything).
		Return(products, nil)

	mockSpecialRepo.EXPECT().
		FindByUser(mock.Anything, "user-1").
		Return(specialPrices, nil)

	resolved, err := service.ListResolvedProducts(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, resolved, 2)

	assert.Equal(t, 80.0, resolved[0].Price)
	require.NotNil(t, resolved[0].OriginalPrice)
	assert.Equal(t, 100.0, *resolved[0].OriginalPrice)
	assert.True(t, resolved[0].HasSpecialPrice)

	assert.Equal(t, 50.0, resolved[1].Price)
	assert.Nil(t, resolved[1].OriginalPrice)
	assert.False(t, resolved[1].HasSpecialPrice)
}

func TestPricingService_ListResolvedProducts_NoUserSkipsSpecialPrices(t *testing.T) {
	mockSpecialRepo := mockRepo.NewMockSpecialPriceRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := NewPricingService(mockSpecialRepo, mockCatalogRepo, newTestConfig())

	ctx := context.Background()
	products := []*entity.Product{
		{ID: "p1", Price: 100.0},
		{ID: "p2", Price: 50.0},
	}

	mockCatalogRepo.EXPECT().
		FindAllProducts(mock.Anything).
		Return(products, nil)

	resolved, err := service.ListResolvedProducts(ctx, "")
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	for _, product := range resolved {
		assert.False(t, product.HasSpecialPrice)
		assert.Nil(t, product.OriginalPrice)
	}
}

func TestPricingService_ListResolvedProducts_OrphanedSpecialPriceSkipped(t *testing.T) {
	mockSpecialRepo := mockRepo.NewMockSpecialPriceRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := NewPricingService(mockSpecialRepo, mockCatalogRepo, newTestConfig())

	ctx := context.Background()
	products := []*entity.Product{
		{ID: "p1", Price: 100.0},
	}
	specialPrices := []*entity.SpecialPrice{
		{UserID: "user-1", ProductID: "removed-product", Price: 10.0},
	}

	mockCatalogRepo.EXPECT().
		FindAllProducts(mock.Anything).
		Return(products, nil)

	mockSpecialRepo.EXPECT().
		FindByUser(mock.Anything, "user-1").
		Return(specialPrices, nil)

	resolved, err := service.ListResolvedProducts(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "p1", resolved[0].ID)
	assert.False(t, resolved[0].HasSpecialPrice)
}

func TestPricingService_ListResolvedProducts_EmptyCatalog(t *testing.T) {
	mockSpecialRepo := mockRepo.NewMockSpecialPriceRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := NewPricingService(mockSpecialRepo, mockCatalogRepo, newTestConfig())

	ctx := context.Background()

	mockCatalogRepo.EXPECT().
		FindAllProducts(mock.Anything).
		Return([]*entity.Product{}, nil)

	mockSpecialRepo.EXPECT().
		FindByUser(mock.Anything, "user-1").
		Return([]*entity.SpecialPrice{}, nil)

	resolved, err := service.ListResolvedProducts(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestPricingService_SubmitSpecialPrice_Success(t *testing.T) {
	mockSpecialRepo := mockRepo.NewMockSpecialPriceRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := NewPricingService(mockSpecialRepo, mockCatalogRepo, newTestConfig())

	ctx := context.Background()
	product := &entity.Product{ID: "p1", Price: 100.0}

	mockCatalogRepo.EXPECT().
		FindProductByID(mock.Anything, "p1").
		Return(product, nil)

	mockSpecialRepo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.SpecialPrice")).
		Return(nil)

	specialPrice, err := service.SubmitSpecialPrice(ctx, &usecase.SubmitSpecialPriceInput{
		UserID:    "user-1",
		ProductID: "p1",
		Price:     80.0,
		Note:      "cliente frecuente",
	})
	require.NoError(t, err)
	require.NotNil(t, specialPrice)
	assert.Equal(t, "user-1", specialPrice.UserID)
	assert.Equal(t, "p1", specialPrice.ProductID)
	assert.Equal(t, 80.0, specialPrice.Price)
	assert.Equal(t, "cliente frecuente", specialPrice.Note)
	assert.False(t, specialPrice.CreatedAt.IsZero())
}

func TestPricingService_SubmitSpecialPrice_ZeroPriceAccepted(t *testing.T) {
	mockSpecialRepo := mockRepo.NewMockSpecialPriceRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := NewPricingService(mockSpecialRepo, mockCatalogRepo, newTestConfig())

	ctx := context.Background()

	mockCatalogRepo.EXPECT().
		FindProductByID(mock.Anything, "p1").
		Return(&entity.Product{ID: "p1"}, nil)

	mockSpecialRepo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.SpecialPrice")).
		Return(nil)

	specialPrice, err := service.SubmitSpecialPrice(ctx, &usecase.SubmitSpecialPriceInput{
		UserID:    "user-1",
		ProductID: "p1",
		Price:     0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, specialPrice.Price)
}

func TestPricingService_SubmitSpecialPrice_NegativePriceRejected(t *testing.T) {
	mockSpecialRepo := mockRepo.NewMockSpecialPriceRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := NewPricingService(mockSpecialRepo, mockCatalogRepo, newTestConfig())

	ctx := context.Background()

	specialPrice, err := service.SubmitSpecialPrice(ctx, &usecase.SubmitSpecialPriceInput{
		UserID:    "user-1",
		ProductID: "p1",
		Price:     -0.01,
	})

	assert.Nil(t, specialPrice)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestPricingService_SubmitSpecialPrice_MissingFieldsRejected(t *testing.T) {
	mockSpecialRepo := mockRepo.NewMockSpecialPriceRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := NewPricingService(mockSpecialRepo, mockCatalogRepo, newTestConfig())

	ctx := context.Background()

	specialPrice, err := service.SubmitSpecialPrice(ctx, &usecase.SubmitSpecialPriceInput{
		UserID: "   ",
		Price:  10.0,
	})

	assert.Nil(t, specialPrice)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "idUsuario")
	assert.Contains(t, appErr.Details(), "idProducto")
}

func TestPricingService_SubmitSpecialPrice_UnknownProductRejected(t *testing.T) {
	mockSpecialRepo := mockRepo.NewMockSpecialPriceRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := NewPricingService(mockSpecialRepo, mockCatalogRepo, newTestConfig())

	ctx := context.Background()

	mockCatalogRepo.EXPECT().
		FindProductByID(mock.Anything, "ghost").
		Return(nil, repository.ErrProductNotFound)

	specialPrice, err := service.SubmitSpecialPrice(ctx, &usecase.SubmitSpecialPriceInput{
		UserID:    "user-1",
		ProductID: "ghost",
		Price:     10.0,
	})

	assert.Nil(t, specialPrice)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
	mockSpecialRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestPricingService_SubmitSpecialPrice_SameInstantResubmission(t *testing.T) {
	mockSpecialRepo := mockRepo.NewMockSpecialPriceRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := NewPricingService(mockSpecialRepo, mockCatalogRepo, newTestConfig())

	ctx := context.Background()
	firstCreatedAt := time.Now().Add(-time.Hour)

	mockCatalogRepo.EXPECT().
		FindProductByID(mock.Anything, "p1").
		Return(&entity.Product{ID: "p1"}, nil).Twice()

	// The store resolves a resubmission for the same pair as an in-place
	// update, keeping the original creation time.
	mockSpecialRepo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.SpecialPrice")).
		RunAndReturn(func(_ context.Context, specialPrice *entity.SpecialPrice) error {
			specialPrice.CreatedAt = firstCreatedAt
			return nil
		}).Twice()

	first, err := service.SubmitSpecialPrice(ctx, &usecase.SubmitSpecialPriceInput{
		UserID: "user-1", ProductID: "p1", Price: 80.0,
	})
	require.NoError(t, err)

	second, err := service.SubmitSpecialPrice(ctx, &usecase.SubmitSpecialPriceInput{
		UserID: "user-1", ProductID: "p1", Price: 70.0,
	})
	require.NoError(t, err)

	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, 70.0, second.Price)
}

func TestPricingService_ListResolvedProducts_StorageUnavailable(t *testing.T) {
	mockSpecialRepo := mockRepo.NewMockSpecialPriceRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := NewPricingService(mockSpecialRepo, mockCatalogRepo, newTestConfig())

	ctx := context.Background()

	mockCatalogRepo.EXPECT().
		FindAllProducts(mock.Anything).
		Return(nil, errors.Wrap(repository.ErrStorageUnavailable, "ping failed"))

	resolved, err := service.ListResolvedProducts(ctx, "user-1")

	assert.Nil(t, resolved)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORAGE_UNAVAILABLE", appErr.ErrorCode())
}

func TestPricingService_SubmitSpecialPrice_StorageTimeout(t *testing.T) {
	mockSpecialRepo := mockRepo.NewMockSpecialPriceRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := NewPricingService(mockSpecialRepo, mockCatalogRepo, newTestConfig())

	ctx := context.Background()

	mockCatalogRepo.EXPECT().
		FindProductByID(mock.Anything, "p1").
		Return(&entity.Product{ID: "p1"}, nil)

	mockSpecialRepo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.SpecialPrice")).
		Return(errors.Wrap(context.DeadlineExceeded, "upsert special price"))

	specialPrice, err := service.SubmitSpecialPrice(ctx, &usecase.SubmitSpecialPriceInput{
		UserID:    "user-1",
		ProductID: "p1",
		Price:     10.0,
	})

	assert.Nil(t, specialPrice)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORAGE_TIMEOUT", appErr.ErrorCode())
}
