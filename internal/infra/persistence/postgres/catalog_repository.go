package postgres

import (
	"context"

	"superprecios/internal/domain/entity"
	"superprecios/internal/domain/repository"
	"superprecios/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
// It only ever reads; the products table is fed by the catalog import
// pipeline outside this service.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// FindAllProducts retrieves the full catalog snapshot. No ordering is
// imposed; clients receive products in catalog order.
func (repo *catalogRepository) FindAllProducts(ctx context.Context) ([]*entity.Product, error) {
	if err := pingStorage(ctx, repo.db); err != nil {
		return nil, err
	}

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Find(&productModels).Error; err != nil {
		return nil, repo.mapReadError(err, "failed to find all products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindProductByID retrieves a single product by its catalog identifier.
func (repo *catalogRepository) FindProductByID(ctx context.Context, id string) (*entity.Product, error) {
	if err := pingStorage(ctx, repo.db); err != nil {
		return nil, err
	}

	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, repo.mapReadError(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

func (repo *catalogRepository) mapReadError(err error, message string) error {
	if isTimeoutError(err) {
		return errors.Wrap(err, message)
	}
	if isConnectionError(err) {
		return errors.Wrap(repository.ErrStorageUnavailable, err.Error())
	}

	return errors.Wrap(err, message)
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		SKU:         data.SKU,
		Name:        data.Name,
		Brand:       data.Brand,
		Category:    data.Category,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		Rating:      data.Rating,
		Price:       data.Price,
		Stock:       data.Stock,
	}
}
