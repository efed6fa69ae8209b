// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"strings"
	"time"

	"superprecios/config"
	"superprecios/internal/domain/entity"
	domainerrors "superprecios/internal/domain/errors"
	"superprecios/internal/domain/repository"
	"superprecios/internal/usecase"

	"github.com/pkg/errors"
)

type pricingService struct {
	specialPriceRepo repository.SpecialPriceRepository
	catalogRepo      repository.CatalogRepository
	queryTimeout     time.Duration
}

// NewPricingService creates a new pricing service instance
func NewPricingService(specialPriceRepo repository.SpecialPriceRepository, catalogRepo repository.CatalogRepository, cfg *config.Config) usecase.PricingUsecase {
	return &pricingService{
		specialPriceRepo: specialPriceRepo,
		catalogRepo:      catalogRepo,
		queryTimeout:     cfg.Pricing.QueryTimeout,
	}
}

// ListResolvedProducts merges the catalog snapshot with the user's special
// prices. The two fetches are sequential and individually consistent, but not
// mutually transactional: a special price written between them may or may not
// be reflected. That is acceptable for display pricing.
func (s *pricingService) ListResolvedProducts(ctx context.Context, userID string) ([]*entity.ResolvedProduct, error) {
	catalogCtx, cancelCatalog := context.WithTimeout(ctx, s.queryTimeout)
	defer cancelCatalog()

	products, err := s.catalogRepo.FindAllProducts(catalogCtx)
	if err != nil {
		return nil, mapStorageError(err, "failed to fetch product catalog")
	}

	resolved := make([]*entity.ResolvedProduct, 0, len(products))

	if userID == "" {
		for _, product := range products {
			resolved = append(resolved, entity.Resolve(product, nil))
		}

		return resolved, nil
	}

	storeCtx, cancelStore := context.WithTimeout(ctx, s.queryTimeout)
	defer cancelStore()

	specialPrices, err := s.specialPriceRepo.FindByUser(storeCtx, userID)
	if err != nil {
		return nil, mapStorageError(err, "failed to fetch special prices")
	}

	byProduct := make(map[string]*entity.SpecialPrice, len(specialPrices))
	for _, specialPrice := range specialPrices {
		byProduct[specialPrice.ProductID] = specialPrice
	}

	// Iterating the catalog means special prices whose product has been
	// removed simply never surface; the orphaned record stays in the store.
	for _, product := range products {
		resolved = append(resolved, entity.Resolve(product, byProduct[product.ID]))
	}

	return resolved, nil
}

// SubmitSpecialPrice validates the submission, confirms the product exists,
// and delegates to the store's atomic upsert. The existence check happens at
// submission time only; it is not re-validated on later reads.
func (s *pricingService) SubmitSpecialPrice(ctx context.Context, input *usecase.SubmitSpecialPriceInput) (*entity.SpecialPrice, error) {
	if err := validateSubmission(input); err != nil {
		return nil, err
	}

	catalogCtx, cancelCatalog := context.WithTimeout(ctx, s.queryTimeout)
	defer cancelCatalog()

	if _, err := s.catalogRepo.FindProductByID(catalogCtx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails("idProducto: " + input.ProductID)
		}

		return nil, mapStorageError(err, "failed to verify product existence")
	}

	now := time.Now()
	specialPrice := &entity.SpecialPrice{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Price:     input.Price,
		Note:      input.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}

	storeCtx, cancelStore := context.WithTimeout(ctx, s.queryTimeout)
	defer cancelStore()

	if err := s.specialPriceRepo.Upsert(storeCtx, specialPrice); err != nil {
		return nil, mapStorageError(err, "failed to upsert special price")
	}

	return specialPrice, nil
}

func validateSubmission(input *usecase.SubmitSpecialPriceInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("Faltan campos obligatorios: idUsuario, idProducto")
	}

	var missing []string
	if strings.TrimSpace(input.UserID) == "" {
		missing = append(missing, "idUsuario")
	}
	if strings.TrimSpace(input.ProductID) == "" {
		missing = append(missing, "idProducto")
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("Faltan campos obligatorios: " + strings.Join(missing, ", "))
	}

	if input.Price < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("precioEspecial debe ser mayor o igual a 0")
	}

	return nil
}

// mapStorageError lifts repository failures into the API fault taxonomy.
// A deadline expiry and an unreachable store are distinct faults so callers
// can tell "slow" from "down".
func mapStorageError(err error, message string) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return domainerrors.ErrStorageTimeout.WrapMessage(message)
	case errors.Is(err, repository.ErrStorageUnavailable):
		return domainerrors.ErrStorageUnavailable.WrapMessage(message)
	}

	return errors.Wrap(err, message)
}
