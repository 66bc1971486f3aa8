package product

// Product is a catalog entry referenced by orders. The pointer fields
// stay nil when the store holds no value for them, so consumers can
// distinguish "unset" from an empty string or zero price.
type Product struct {
	ItemID      string   `json:"item_id"`
	SweetName   *string  `json:"sweet_name"`
	VariantType *string  `json:"variant_type"`
	PricePerKg  *float64 `json:"price_per_kg"`
}
