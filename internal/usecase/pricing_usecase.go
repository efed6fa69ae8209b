// Package usecase defines the application's use case interfaces and DTOs.
package usecase

import (
	"context"

	"superprecios/internal/domain/entity"
)

// SubmitSpecialPriceInput carries an operator's special price submission.
// JSON tags match the public API wire names.
type SubmitSpecialPriceInput struct {
	UserID    string  `json:"idUsuario"`
	ProductID string  `json:"idProducto"`
	Price     float64 `json:"precioEspecial"`
	Note      string  `json:"notas"`
}

// PricingUsecase resolves catalog prices against per-user special prices and
// accepts new submissions.
type PricingUsecase interface {
	// ListResolvedProducts returns the catalog with each product annotated
	// with the price the given user should see. An empty userID returns the
	// plain catalog view with no overrides applied. Products are returned in
	// catalog order; special prices whose product has left the catalog are
	// skipped.
	ListResolvedProducts(ctx context.Context, userID string) ([]*entity.ResolvedProduct, error)

	// SubmitSpecialPrice validates the input, confirms the product exists in
	// the catalog, and upserts the special price for the (user, product)
	// pair. On success the returned record reflects the stored row.
	SubmitSpecialPrice(ctx context.Context, input *SubmitSpecialPriceInput) (*entity.SpecialPrice, error)
}
