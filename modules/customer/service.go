package customer

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/pradeep-isb/Mistee/domain/customer"
	"github.com/pradeep-isb/Mistee/domain/product"
	"github.com/pradeep-isb/Mistee/store"
)

const (
	defaultName      = "MishTee Guest"
	greetingTemplate = "Namaste, %s ji! Great to see you again."
)

// Service resolves a customer by phone number and shapes their order history
// into the fixed-schema view. All reads go through the store gateway; absent
// data falls back to defaults, only transport failures return an error.
type Service struct {
	gw store.Gateway
}

// NewService creates a lookup service on top of gw.
func NewService(gw store.Gateway) *Service {
	return &Service{gw: gw}
}

// Lookup resolves the greeting and order history for phone. The greeting is
// always non-empty: an unknown or nameless customer greets as the guest.
func (s *Service) Lookup(ctx context.Context, phone string) (*LookupResponse, error) {
	phone = strings.TrimSpace(phone)

	cust, err := s.findCustomer(ctx, phone)
	if err != nil {
		return nil, err
	}
	name := defaultName
	if cust != nil && cust.FullName != "" {
		name = cust.FullName
	}
	greeting := fmt.Sprintf(greetingTemplate, name)

	orders, err := s.gw.Fetch(ctx, store.Query{
		Collection: "orders",
		Columns: []string{
			"order_id", "order_date", "product_id", "store_id", "agent_id",
			"qty_kg", "order_value_inr", "order_margin_inr", "status",
		},
		Eq:         &store.Condition{Column: "cust_phone", Value: phone},
		OrderBy:    "order_date",
		Descending: true,
	})
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return &LookupResponse{Greeting: greeting, Orders: []HistoryRow{}}, nil
	}

	products, err := s.findProducts(ctx, orders)
	if err != nil {
		return nil, err
	}

	history := make([]HistoryRow, 0, len(orders))
	for _, r := range orders {
		row := HistoryRow{
			OrderID:        r.Str("order_id"),
			OrderDate:      r.Str("order_date"),
			QtyKg:          r.Numeric("qty_kg"),
			OrderValueINR:  r.Numeric("order_value_inr"),
			OrderMarginINR: r.Numeric("order_margin_inr"),
			Status:         r.Str("status"),
			StoreID:        r.Str("store_id"),
			AgentID:        r.Str("agent_id"),
			ProductID:      r.Str("product_id"),
		}
		if p, ok := products[row.ProductID]; ok {
			row.SweetName = p.SweetName
			row.VariantType = p.VariantType
		}
		history = append(history, row)
	}

	return &LookupResponse{Greeting: greeting, Orders: history}, nil
}

// findCustomer returns the customer registered under phone, or nil when no
// such customer exists. Absence is not an error.
func (s *Service) findCustomer(ctx context.Context, phone string) (*domain.Customer, error) {
	rows, err := s.gw.Fetch(ctx, store.Query{
		Collection: "customers",
		Columns:    []string{"full_name"},
		Eq:         &store.Condition{Column: "phone", Value: phone},
		Limit:      1,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &domain.Customer{Phone: phone, FullName: rows[0].Str("full_name")}, nil
}

// findProducts fetches the catalog entries referenced by orders, keyed by
// item id. Orders without a product id are skipped; an empty catalog result
// yields an empty map, not an error.
func (s *Service) findProducts(ctx context.Context, orders []store.Row) (map[string]product.Product, error) {
	ids := make([]string, 0, len(orders))
	seen := make(map[string]bool, len(orders))
	for _, r := range orders {
		id := r.Str("product_id")
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := s.gw.Fetch(ctx, store.Query{
		Collection: "products",
		Columns:    []string{"item_id", "sweet_name", "variant_type"},
		In:         &store.Membership{Column: "item_id", Values: ids},
	})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]product.Product, len(rows))
	for _, r := range rows {
		id := r.Str("item_id")
		byID[id] = product.Product{
			ItemID:      id,
			SweetName:   r.StrPtr("sweet_name"),
			VariantType: r.StrPtr("variant_type"),
		}
	}
	return byID, nil
}
