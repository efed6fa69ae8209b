// Package entity contains the core business objects of the project.
package entity

// Product is a catalog record. The catalog is owned by an external store and
// is strictly read-only here: pricing only interprets ID and Price, the rest
// are display attributes passed through to clients.
type Product struct {
	ID          string  `json:"id"`          // Catalog identifier, referenced by special prices.
	SKU         string  `json:"sku"`         // Stock keeping unit shown in listings.
	Name        string  `json:"name"`        // Display name.
	Brand       string  `json:"brand"`       // Manufacturer or brand label.
	Category    string  `json:"category"`    // Catalog category used by client-side filters.
	Description string  `json:"description"` // Free-text description.
	ImageURL    string  `json:"image_url"`   // Product image location.
	Rating      float64 `json:"rating"`      // Aggregated review rating.
	Price       float64 `json:"price"`       // Base catalog price.
	Stock       int     `json:"stock"`       // Units available.
}
