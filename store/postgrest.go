package store

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/supabase-community/postgrest-go"
)

// RestGateway reads the store through its PostgREST endpoint. The client is
// stateless; each Fetch is an independent HTTP exchange.
type RestGateway struct {
	client *postgrest.Client
}

// NewRestGateway creates a gateway against baseURL's /rest/v1 endpoint,
// authenticating with the publishable API key.
func NewRestGateway(baseURL, apiKey string) *RestGateway {
	headers := map[string]string{
		"apikey":        apiKey,
		"Authorization": "Bearer " + apiKey,
	}
	url := strings.TrimRight(baseURL, "/") + "/rest/v1"
	return &RestGateway{
		client: postgrest.NewClient(url, "public", headers),
	}
}

// Fetch executes q against the REST endpoint. The postgrest client does not
// take a context; cancellation applies only to the SQL gateway.
func (g *RestGateway) Fetch(_ context.Context, q Query) ([]Row, error) {
	columns := "*"
	if len(q.Columns) > 0 {
		columns = strings.Join(q.Columns, ",")
	}

	fb := g.client.From(q.Collection).Select(columns, "", false)
	if q.Eq != nil {
		fb = fb.Eq(q.Eq.Column, q.Eq.Value)
	}
	if q.In != nil {
		fb = fb.In(q.In.Column, q.In.Values)
	}
	if q.OrderBy != "" {
		fb = fb.Order(q.OrderBy, &postgrest.OrderOpts{Ascending: !q.Descending})
	}
	if q.Limit > 0 {
		fb = fb.Limit(q.Limit, "")
	}

	data, _, err := fb.Execute()
	if err != nil {
		return nil, &TransportError{Op: q.Collection, Err: err}
	}

	var rows []Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, &TransportError{Op: q.Collection, Err: err}
	}
	return rows, nil
}

// Close is a no-op; the REST gateway holds no connections.
func (g *RestGateway) Close() {}
