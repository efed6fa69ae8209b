package model

import (
	"time"

	"github.com/google/uuid"
)

// SpecialPriceModel is the GORM-specific struct for the 'special_prices' table.
// The composite unique index on (user_id, product_id) is what guarantees at
// most one record per pair; the upsert relies on it for its ON CONFLICT target.
type SpecialPriceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    string    `gorm:"type:varchar(64);not null;uniqueIndex:ux_special_prices_user_product,priority:1"`
	ProductID string    `gorm:"type:varchar(64);not null;uniqueIndex:ux_special_prices_user_product,priority:2;index"`
	Price     float64   `gorm:"type:decimal(12,2);not null;check:price >= 0"`
	Note      string    `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SpecialPriceModel) TableName() string {
	return "special_prices"
}
