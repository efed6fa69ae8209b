package repository

import (
	"context"

	"superprecios/internal/domain/entity"
	"superprecios/internal/errors"
)

// ErrProductNotFound is returned when a catalog product does not exist.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository is the read-only collaborator for the product catalog.
// Pricing never writes to it and makes no assumption about how it is fed.
type CatalogRepository interface {
	// FindAllProducts retrieves the full catalog snapshot in catalog order.
	FindAllProducts(ctx context.Context) ([]*entity.Product, error)

	// FindProductByID retrieves a single product.
	// Returns ErrProductNotFound when the identifier is unknown.
	FindProductByID(ctx context.Context, id string) (*entity.Product, error)
}
