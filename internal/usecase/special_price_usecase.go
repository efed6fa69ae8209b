package usecase

import (
	"context"

	"superprecios/internal/domain/entity"

	"github.com/google/uuid"
)

// SpecialPriceUsecase exposes the administration operations over stored
// special price records.
type SpecialPriceUsecase interface {
	// ListSpecialPrices retrieves records newest-first, scoped to a user when
	// userID is non-empty and unfiltered otherwise.
	ListSpecialPrices(ctx context.Context, userID string) ([]*entity.SpecialPrice, error)

	// CheckSpecialPrice reports whether a record exists for the pair and
	// returns it when present. Absence is a negative result, not a fault.
	CheckSpecialPrice(ctx context.Context, userID, productID string) (*entity.SpecialPrice, bool, error)

	// DeleteSpecialPrice removes a record by ID, reporting through the
	// boolean whether anything was removed.
	DeleteSpecialPrice(ctx context.Context, id uuid.UUID) (bool, error)
}
