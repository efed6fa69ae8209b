// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"superprecios/internal/domain/entity"
	"superprecios/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for special price persistence.
var (
	// ErrSpecialPriceNotFound is returned when no record exists for a lookup key.
	ErrSpecialPriceNotFound = errors.New("special price not found")
	// ErrStorageUnavailable is returned when the backing store cannot be
	// reached or is not ready to serve the operation.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// SpecialPriceRepository defines the database operations for special price
// records. The (user_id, product_id) pair is unique; Upsert must be a single
// atomic create-or-replace at the storage layer, never a read-then-write.
type SpecialPriceRepository interface {
	// Upsert creates the record for its (UserID, ProductID) pair, or replaces
	// price, note and updated_at in place when the pair already exists.
	// On return the entity reflects the stored row, including the original
	// created_at when the pair predates this write.
	Upsert(ctx context.Context, specialPrice *entity.SpecialPrice) error

	// FindByUser retrieves all records for a user, newest first.
	FindByUser(ctx context.Context, userID string) ([]*entity.SpecialPrice, error)

	// FindAll retrieves all records regardless of user, newest first.
	FindAll(ctx context.Context) ([]*entity.SpecialPrice, error)

	// FindByUserAndProduct retrieves the single record for a pair.
	// Returns ErrSpecialPriceNotFound when the pair has no record.
	FindByUserAndProduct(ctx context.Context, userID, productID string) (*entity.SpecialPrice, error)

	// Delete removes a record by its ID. Returns false when no record was
	// removed; absence is not an error.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
