package trending

import (
	"context"
	"sort"

	"github.com/pradeep-isb/Mistee/domain/product"
	"github.com/pradeep-isb/Mistee/store"
)

// topK is how many products the trending view ranks.
const topK = 4

// Service computes the store-wide top products by total quantity sold and
// enriches them with catalog attributes.
type Service struct {
	gw store.Gateway
}

// NewService creates a trending service on top of gw.
func NewService(gw store.Gateway) *Service {
	return &Service{gw: gw}
}

// TopProducts ranks products across all orders in the system. Quantities
// that are missing or non-numeric count as zero; orders without a product id
// contribute to no group. Ties rank in first-seen order.
func (s *Service) TopProducts(ctx context.Context) ([]Row, error) {
	orders, err := s.gw.Fetch(ctx, store.Query{
		Collection: "orders",
		Columns:    []string{"product_id", "qty_kg"},
	})
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return []Row{}, nil
	}

	totals := make(map[string]float64)
	ranked := make([]string, 0)
	for _, r := range orders {
		id := r.Str("product_id")
		if id == "" {
			continue
		}
		if _, ok := totals[id]; !ok {
			ranked = append(ranked, id)
		}
		totals[id] += r.Numeric("qty_kg")
	}

	// Stable sort keeps first-seen order for equal totals.
	sort.SliceStable(ranked, func(i, j int) bool {
		return totals[ranked[i]] > totals[ranked[j]]
	})
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	if len(ranked) == 0 {
		return []Row{}, nil
	}

	products, err := s.findProducts(ctx, ranked)
	if err != nil {
		return nil, err
	}

	view := make([]Row, 0, len(ranked))
	for _, id := range ranked {
		row := Row{ProductID: id, TotalQtyKg: totals[id]}
		if p, ok := products[id]; ok {
			row.SweetName = p.SweetName
			row.VariantType = p.VariantType
			row.PricePerKg = p.PricePerKg
		}
		view = append(view, row)
	}
	return view, nil
}

// findProducts fetches catalog entries for ids, keyed by item id. An empty
// catalog result yields an empty map, not an error.
func (s *Service) findProducts(ctx context.Context, ids []string) (map[string]product.Product, error) {
	rows, err := s.gw.Fetch(ctx, store.Query{
		Collection: "products",
		Columns:    []string{"item_id", "sweet_name", "variant_type", "price_per_kg"},
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
			PricePerKg:  r.NumericPtr("price_per_kg"),
		}
	}
	return byID, nil
}
