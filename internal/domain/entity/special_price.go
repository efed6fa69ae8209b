package entity

import (
	"time"

	"github.com/google/uuid"
)

// SpecialPrice is a per-user price override for a single product. At most one
// record exists per (UserID, ProductID) pair; a new submission for the same
// pair replaces price and note in place.
type SpecialPrice struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the record.
	UserID    string    `json:"user_id"`    // The user the override price applies to.
	ProductID string    `json:"product_id"` // The catalog product being overridden.
	Price     float64   `json:"price"`      // Override price, non-negative.
	Note      string    `json:"note"`       // Optional operator note.
	CreatedAt time.Time `json:"created_at"` // Set once when the pair is first created.
	UpdatedAt time.Time `json:"updated_at"` // Refreshed on every write to the pair.
}
