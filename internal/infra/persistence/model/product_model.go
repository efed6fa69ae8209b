package model

import "time"

// ProductModel is the GORM-specific struct for the 'products' table.
// The table is loaded by the catalog import pipeline and is read-only for
// this service.
type ProductModel struct {
	ID          string  `gorm:"type:varchar(64);primary_key"`
	SKU         string  `gorm:"type:varchar(64);not null;index"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Brand       string  `gorm:"type:varchar(128);not null;default:''"`
	Category    string  `gorm:"type:varchar(128);not null;default:'';index"`
	Description string  `gorm:"type:text;not null;default:''"`
	ImageURL    string  `gorm:"type:text;not null;default:''"`
	Rating      float64 `gorm:"type:decimal(3,2);not null;default:0"`
	Price       float64 `gorm:"type:decimal(12,2);not null"`
	Stock       int     `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
