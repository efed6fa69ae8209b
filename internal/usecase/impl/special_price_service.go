package impl

import (
	"context"
	"time"

	"superprecios/config"
	"superprecios/internal/domain/entity"
	"superprecios/internal/domain/repository"
	"superprecios/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type specialPriceService struct {
	specialPriceRepo repository.SpecialPriceRepository
	queryTimeout     time.Duration
}

// NewSpecialPriceService creates a new special price administration service instance
func NewSpecialPriceService(specialPriceRepo repository.SpecialPriceRepository, cfg *config.Config) usecase.SpecialPriceUsecase {
	return &specialPriceService{
		specialPriceRepo: specialPriceRepo,
		queryTimeout:     cfg.Pricing.QueryTimeout,
	}
}

// ListSpecialPrices retrieves stored records newest-first, optionally scoped
// to a single user.
func (s *specialPriceService) ListSpecialPrices(ctx context.Context, userID string) ([]*entity.SpecialPrice, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var (
		specialPrices []*entity.SpecialPrice
		err           error
	)
	if userID == "" {
		specialPrices, err = s.specialPriceRepo.FindAll(storeCtx)
	} else {
		specialPrices, err = s.specialPriceRepo.FindByUser(storeCtx, userID)
	}
	if err != nil {
		return nil, mapStorageError(err, "failed to list special prices")
	}

	return specialPrices, nil
}

// CheckSpecialPrice reports whether the (user, product) pair has a record.
func (s *specialPriceService) CheckSpecialPrice(ctx context.Context, userID, productID string) (*entity.SpecialPrice, bool, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	specialPrice, err := s.specialPriceRepo.FindByUserAndProduct(storeCtx, userID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrSpecialPriceNotFound) {
			return nil, false, nil
		}

		return nil, false, mapStorageError(err, "failed to check special price")
	}

	return specialPrice, true, nil
}

// DeleteSpecialPrice removes a record by ID. Deleting an absent record is not
// a fault; the boolean carries the outcome.
func (s *specialPriceService) DeleteSpecialPrice(ctx context.Context, id uuid.UUID) (bool, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	deleted, err := s.specialPriceRepo.Delete(storeCtx, id)
	if err != nil {
		return false, mapStorageError(err, "failed to delete special price")
	}

	return deleted, nil
}
