package entity

// ResolvedProduct is a catalog product annotated with the price that should be
// shown to the requesting user. It is computed on every read and never stored.
//
// When a special price applies, the embedded Price carries the override,
// OriginalPrice carries the catalog price, and HasSpecialPrice is true.
// Otherwise Price is the catalog price and OriginalPrice is omitted.
type ResolvedProduct struct {
	Product
	OriginalPrice   *float64 `json:"original_price,omitempty"`
	HasSpecialPrice bool     `json:"has_special_price"`
}

// Resolve builds the user-facing view of a product, applying the special
// price when one is present.
func Resolve(product *Product, special *SpecialPrice) *ResolvedProduct {
	resolved := &ResolvedProduct{Product: *product}
	if special == nil {
		return resolved
	}

	original := product.Price
	resolved.Price = special.Price
	resolved.OriginalPrice = &original
	resolved.HasSpecialPrice = true

	return resolved
}
