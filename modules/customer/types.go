package customer

// LookupRequest is the request for the customer lookup service.
type LookupRequest struct {
	Phone string `json:"phone"`
}

// HistoryRow is one order in a customer's history, enriched with product
// attributes. SweetName and VariantType stay nil when the referenced product
// is missing from the catalog; the row itself is never dropped.
type HistoryRow struct {
	OrderID        string  `json:"order_id"`
	OrderDate      string  `json:"order_date"`
	SweetName      *string `json:"sweet_name"`
	VariantType    *string `json:"variant_type"`
	QtyKg          float64 `json:"qty_kg"`
	OrderValueINR  float64 `json:"order_value_inr"`
	OrderMarginINR float64 `json:"order_margin_inr"`
	Status         string  `json:"status"`
	StoreID        string  `json:"store_id"`
	AgentID        string  `json:"agent_id"`
	ProductID      string  `json:"product_id"`
}

// HistoryColumns is the fixed column order of the order-history view. The
// view always carries this full schema, even with zero rows.
var HistoryColumns = []string{
	"order_id",
	"order_date",
	"sweet_name",
	"variant_type",
	"qty_kg",
	"order_value_inr",
	"order_margin_inr",
	"status",
	"store_id",
	"agent_id",
	"product_id",
}

// LookupResponse carries the greeting and the order-history view. Orders is
// never nil; zero matching orders yields an empty slice.
type LookupResponse struct {
	Greeting string       `json:"greeting"`
	Orders   []HistoryRow `json:"orders"`
}
