package trending

// TopRequest is the (empty) request for the trending service; the ranking is
// global, not customer-scoped.
type TopRequest struct{}

// Row is one ranked product in the trending view. Product-derived fields
// stay nil when the catalog has no entry for the product.
type Row struct {
	SweetName   *string  `json:"sweet_name"`
	VariantType *string  `json:"variant_type"`
	TotalQtyKg  float64  `json:"total_qty_kg"`
	PricePerKg  *float64 `json:"price_per_kg"`
	ProductID   string   `json:"product_id"`
}

// Columns is the fixed column order of the trending view. The view always
// carries this full schema, even with zero rows.
var Columns = []string{
	"sweet_name",
	"variant_type",
	"total_qty_kg",
	"price_per_kg",
	"product_id",
}

// TopResponse carries the trending view. Products is never nil and holds at
// most four rows, sorted by total quantity descending.
type TopResponse struct {
	Products []Row `json:"products"`
}
