// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"superprecios/internal/domain/entity"
	domainerrors "superprecios/internal/domain/errors"
	"superprecios/internal/domain/repository"
	"superprecios/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// specialPriceRepository implements the repository.SpecialPriceRepository interface.
type specialPriceRepository struct {
	db *gorm.DB
}

// NewSpecialPriceRepository is the constructor for specialPriceRepository.
func NewSpecialPriceRepository(db *gorm.DB) repository.SpecialPriceRepository {
	return &specialPriceRepository{
		db: db,
	}
}

// Upsert atomically creates or replaces the record for the (user, product)
// pair. The statement is a single INSERT ... ON CONFLICT DO UPDATE against
// the composite unique index, so concurrent writers for the same pair resolve
// to exactly one committed row with last-committed-wins semantics; created_at
// is left untouched by the conflict branch. RETURNING feeds the stored row
// back into the entity.
func (repo *specialPriceRepository) Upsert(ctx context.Context, specialPrice *entity.SpecialPrice) error {
	if err := pingStorage(ctx, repo.db); err != nil {
		return err
	}

	specialPriceM := fromSpecialPriceDomain(specialPrice)
	if specialPriceM.ID == uuid.Nil {
		specialPriceM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"price",
				"note",
				"updated_at",
			}),
		}, clause.Returning{}).
		Create(specialPriceM).Error; err != nil {
		return repo.mapWriteError(err, "failed to upsert special price")
	}

	*specialPrice = *toSpecialPriceDomain(specialPriceM)

	return nil
}

// FindByUser retrieves all records for a user, most recent first.
func (repo *specialPriceRepository) FindByUser(ctx context.Context, userID string) ([]*entity.SpecialPrice, error) {
	if err := pingStorage(ctx, repo.db); err != nil {
		return nil, err
	}

	var specialPriceModels []*model.SpecialPriceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&specialPriceModels).Error; err != nil {
		return nil, repo.mapReadError(err, "failed to find special prices by user")
	}

	return toSpecialPriceDomainList(specialPriceModels), nil
}

// FindAll retrieves all records regardless of user, most recent first.
func (repo *specialPriceRepository) FindAll(ctx context.Context) ([]*entity.SpecialPrice, error) {
	if err := pingStorage(ctx, repo.db); err != nil {
		return nil, err
	}

	var specialPriceModels []*model.SpecialPriceModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&specialPriceModels).Error; err != nil {
		return nil, repo.mapReadError(err, "failed to find all special prices")
	}

	return toSpecialPriceDomainList(specialPriceModels), nil
}

// FindByUserAndProduct retrieves the single record for a (user, product) pair.
func (repo *specialPriceRepository) FindByUserAndProduct(ctx context.Context, userID, productID string) (*entity.SpecialPrice, error) {
	if err := pingStorage(ctx, repo.db); err != nil {
		return nil, err
	}

	var specialPriceM model.SpecialPriceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&specialPriceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpecialPriceNotFound
		}

		return nil, repo.mapReadError(err, "failed to find special price by user and product")
	}

	return toSpecialPriceDomain(&specialPriceM), nil
}

// Delete removes a record by its ID. A missing record is reported through the
// boolean, not as an error.
func (repo *specialPriceRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := pingStorage(ctx, repo.db); err != nil {
		return false, err
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SpecialPriceModel{})

	if result.Error != nil {
		return false, repo.mapWriteError(result.Error, "failed to delete special price")
	}

	return result.RowsAffected > 0, nil
}

func (repo *specialPriceRepository) mapReadError(err error, message string) error {
	if isTimeoutError(err) {
		return errors.Wrap(err, message)
	}
	if isConnectionError(err) {
		return errors.Wrap(repository.ErrStorageUnavailable, err.Error())
	}

	return errors.Wrap(err, message)
}

func (repo *specialPriceRepository) mapWriteError(err error, message string) error {
	if isTimeoutError(err) {
		return errors.Wrap(err, message)
	}
	if isConnectionError(err) {
		return errors.Wrap(repository.ErrStorageUnavailable, err.Error())
	}
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails("El precio no puede ser negativo")
	}

	return domainerrors.NewDatabaseExecuteError(err, message)
}

// --- Mapper Functions ---

// toSpecialPriceDomain converts a GORM SpecialPriceModel to a domain SpecialPrice entity.
func toSpecialPriceDomain(data *model.SpecialPriceModel) *entity.SpecialPrice {
	if data == nil {
		return nil
	}

	return &entity.SpecialPrice{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Price:     data.Price,
		Note:      data.Note,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toSpecialPriceDomainList(models []*model.SpecialPriceModel) []*entity.SpecialPrice {
	specialPrices := make([]*entity.SpecialPrice, 0, len(models))
	for _, specialPriceM := range models {
		specialPrices = append(specialPrices, toSpecialPriceDomain(specialPriceM))
	}

	return specialPrices
}

// fromSpecialPriceDomain converts a domain SpecialPrice entity to a GORM SpecialPriceModel.
func fromSpecialPriceDomain(data *entity.SpecialPrice) *model.SpecialPriceModel {
	if data == nil {
		return nil
	}

	return &model.SpecialPriceModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Price:     data.Price,
		Note:      data.Note,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
