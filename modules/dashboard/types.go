package dashboard

import (
	"github.com/pradeep-isb/Mistee/modules/customer"
	"github.com/pradeep-isb/Mistee/modules/trending"
)

// LoginRequest is the body of the dashboard login call.
type LoginRequest struct {
	Phone string `json:"phone"`
}

// HistoryTable is the order-history view as a tabular payload. Columns is
// always the full 11-column schema, Rows may be empty.
type HistoryTable struct {
	Columns []string              `json:"columns"`
	Rows    []customer.HistoryRow `json:"rows"`
}

// TrendingTable is the trending view as a tabular payload. Columns is always
// the full 5-column schema, Rows may be empty.
type TrendingTable struct {
	Columns []string       `json:"columns"`
	Rows    []trending.Row `json:"rows"`
}

// LoginResponse is everything one login action produces.
type LoginResponse struct {
	Greeting     string        `json:"greeting"`
	OrderHistory HistoryTable  `json:"order_history"`
	Trending     TrendingTable `json:"trending"`
}

// ErrorResponse is the error body for failed HTTP requests.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}
