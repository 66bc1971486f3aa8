package dashboard

import (
	"context"
	"strings"

	"github.com/pradeep-isb/Mistee/modules/customer"
	"github.com/pradeep-isb/Mistee/modules/trending"
)

const invalidPhoneGreeting = "Namaste, MishTee Guest ji! Please enter a valid phone number."

// Orchestrator answers a single login action with a greeting, the caller's
// order history and the store-wide trending view. It holds no state across
// calls; each Login is independent and idempotent against the read-only
// store. Note the queries within one call may observe different store
// snapshots; that read skew is accepted.
type Orchestrator struct {
	customers customer.Port
	trends    trending.Port
}

// NewOrchestrator creates an orchestrator over the two pipeline ports.
func NewOrchestrator(customers customer.Port, trends trending.Port) *Orchestrator {
	return &Orchestrator{customers: customers, trends: trends}
}

// Login handles one submitted phone number. A blank or whitespace-only phone
// takes the guest branch: fixed greeting, empty history, and the trending
// view is still computed so that panel is always populated. Pipeline calls
// run sequentially; transport failures pass through unmodified.
func (o *Orchestrator) Login(ctx context.Context, phone string) (*LoginResponse, error) {
	if strings.TrimSpace(phone) == "" {
		top, err := o.trends.TopProducts(ctx)
		if err != nil {
			return nil, err
		}
		return &LoginResponse{
			Greeting:     invalidPhoneGreeting,
			OrderHistory: HistoryTable{Columns: customer.HistoryColumns, Rows: []customer.HistoryRow{}},
			Trending:     TrendingTable{Columns: trending.Columns, Rows: top},
		}, nil
	}

	lookup, err := o.customers.Lookup(ctx, phone)
	if err != nil {
		return nil, err
	}
	top, err := o.trends.TopProducts(ctx)
	if err != nil {
		return nil, err
	}

	orders := lookup.Orders
	if orders == nil {
		orders = []customer.HistoryRow{}
	}
	return &LoginResponse{
		Greeting:     lookup.Greeting,
		OrderHistory: HistoryTable{Columns: customer.HistoryColumns, Rows: orders},
		Trending:     TrendingTable{Columns: trending.Columns, Rows: top},
	}, nil
}
