package customer

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pradeep-isb/Mistee/store"
)

// fakeGateway implements store.Gateway over in-memory tables. It honors the
// equality, membership, ordering and limit parts of the query the way the
// remote store does, so the service's delegation of filtering and sorting is
// exercised.
type fakeGateway struct {
	tables  map[string][]store.Row
	err     error
	queries []store.Query
}

// Compile-time interface check.
var _ store.Gateway = (*fakeGateway)(nil)

func (g *fakeGateway) Fetch(_ context.Context, q store.Query) ([]store.Row, error) {
	g.queries = append(g.queries, q)
	if g.err != nil {
		return nil, g.err
	}

	out := make([]store.Row, 0)
	for _, r := range g.tables[q.Collection] {
		if q.Eq != nil && r.Str(q.Eq.Column) != q.Eq.Value {
			continue
		}
		if q.In != nil && !containsString(q.In.Values, r.Str(q.In.Column)) {
			continue
		}
		out = append(out, r)
	}
	if q.OrderBy != "" {
		sort.SliceStable(out, func(i, j int) bool {
			if q.Descending {
				return out[i].Str(q.OrderBy) > out[j].Str(q.OrderBy)
			}
			return out[i].Str(q.OrderBy) < out[j].Str(q.OrderBy)
		})
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (g *fakeGateway) Close() {}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func sampleTables() map[string][]store.Row {
	return map[string][]store.Row{
		"customers": {
			{"phone": "9999999999", "full_name": "Asha Rao"},
			{"phone": "8888888888", "full_name": ""},
			{"phone": "7777777777", "full_name": nil},
		},
		"orders": {
			{
				"order_id": float64(1), "order_date": "2024-01-01", "product_id": "P1",
				"store_id": "S1", "agent_id": "A1", "qty_kg": float64(2),
				"order_value_inr": float64(900), "order_margin_inr": float64(120),
				"status": "DELIVERED", "cust_phone": "9999999999",
			},
			{
				"order_id": float64(2), "order_date": "2024-02-01", "product_id": "P2",
				"store_id": "S1", "agent_id": "A2", "qty_kg": float64(1),
				"order_value_inr": float64(450), "order_margin_inr": float64(60),
				"status": "DELIVERED", "cust_phone": "9999999999",
			},
		},
		"products": {
			{"item_id": "P1", "sweet_name": "Gulab Jamun", "variant_type": "Classic"},
			{"item_id": "P2", "sweet_name": "Rasgulla", "variant_type": "Spongy"},
		},
	}
}

func TestLookup_OrdersNewestFirstAndEnriched(t *testing.T) {
	gw := &fakeGateway{tables: sampleTables()}
	svc := NewService(gw)

	resp, err := svc.Lookup(context.Background(), "9999999999")
	require.NoError(t, err)
	require.Equal(t, "Namaste, Asha Rao ji! Great to see you again.", resp.Greeting)
	require.Len(t, resp.Orders, 2)

	// February order before January order
	require.Equal(t, "2", resp.Orders[0].OrderID)
	require.Equal(t, "1", resp.Orders[1].OrderID)

	require.NotNil(t, resp.Orders[0].SweetName)
	require.Equal(t, "Rasgulla", *resp.Orders[0].SweetName)
	require.NotNil(t, resp.Orders[0].VariantType)
	require.Equal(t, "Spongy", *resp.Orders[0].VariantType)
	require.NotNil(t, resp.Orders[1].SweetName)
	require.Equal(t, "Gulab Jamun", *resp.Orders[1].SweetName)

	// The join key never leaks into the view
	encoded, err := json.Marshal(resp.Orders[0])
	require.NoError(t, err)
	require.NotContains(t, string(encoded), "item_id")
}

func TestLookup_GreetingFallsBackToGuest(t *testing.T) {
	tests := []struct {
		name  string
		phone string
	}{
		{"unknown customer", "1234567890"},
		{"empty display name", "8888888888"},
		{"null display name", "7777777777"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{tables: sampleTables()}
			svc := NewService(gw)

			resp, err := svc.Lookup(context.Background(), tt.phone)
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			want := "Namaste, MishTee Guest ji! Great to see you again."
			if resp.Greeting != want {
				t.Errorf("Greeting = %q, want %q", resp.Greeting, want)
			}
			if resp.Greeting == "" {
				t.Error("Greeting must never be empty")
			}
		})
	}
}

func TestLookup_EmptyHistoryKeepsSchema(t *testing.T) {
	gw := &fakeGateway{tables: sampleTables()}
	svc := NewService(gw)

	resp, err := svc.Lookup(context.Background(), "1234567890")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if resp.Orders == nil {
		t.Fatal("Orders must be an empty slice, not nil")
	}
	if len(resp.Orders) != 0 {
		t.Errorf("len(Orders) = %d, want 0", len(resp.Orders))
	}
	if len(HistoryColumns) != 11 {
		t.Errorf("len(HistoryColumns) = %d, want 11", len(HistoryColumns))
	}

	// Only the customer and order queries should have run; no product
	// enrichment without orders.
	if len(gw.queries) != 2 {
		t.Errorf("query count = %d, want 2", len(gw.queries))
	}
}

func TestLookup_MissingProductsKeepRows(t *testing.T) {
	tables := sampleTables()
	tables["products"] = nil // catalog entirely empty
	gw := &fakeGateway{tables: tables}
	svc := NewService(gw)

	resp, err := svc.Lookup(context.Background(), "9999999999")
	require.NoError(t, err)
	require.Len(t, resp.Orders, 2)
	for _, row := range resp.Orders {
		require.Nil(t, row.SweetName)
		require.Nil(t, row.VariantType)
		require.NotEmpty(t, row.OrderID)
		require.NotEmpty(t, row.ProductID)
	}
}

func TestLookup_TrimsPhoneBeforeQuerying(t *testing.T) {
	gw := &fakeGateway{tables: sampleTables()}
	svc := NewService(gw)

	resp, err := svc.Lookup(context.Background(), "   9999999999\t")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if len(resp.Orders) != 2 {
		t.Errorf("len(Orders) = %d, want 2", len(resp.Orders))
	}
	for _, q := range gw.queries {
		if q.Eq != nil && strings.TrimSpace(q.Eq.Value) != q.Eq.Value {
			t.Errorf("query against %s used untrimmed filter %q", q.Collection, q.Eq.Value)
		}
	}
}

func TestLookup_TransportErrorPropagates(t *testing.T) {
	gw := &fakeGateway{
		tables: sampleTables(),
		err:    &store.TransportError{Op: "customers", Status: 503},
	}
	svc := NewService(gw)

	_, err := svc.Lookup(context.Background(), "9999999999")
	if err == nil {
		t.Fatal("Lookup() expected error")
	}
	if !store.IsTransport(err) {
		t.Errorf("error %v is not a TransportError", err)
	}
}
