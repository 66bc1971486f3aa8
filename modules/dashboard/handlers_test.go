package dashboard

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/pradeep-isb/Mistee/modules/assets"
	"github.com/pradeep-isb/Mistee/modules/customer"
	"github.com/pradeep-isb/Mistee/modules/trending"
)

// newTestModule wires a dashboard module with mocked ports and routes set
// up, without binding a listener.
func newTestModule(customers customer.Port, trends trending.Port, a *assets.Module) *Module {
	m := &Module{
		customers: customers,
		trends:    trends,
		assets:    a,
		port:      3000,
	}
	m.orch = NewOrchestrator(customers, trends)
	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	m.setupRoutes()
	return m
}

func TestLoginEndpoint_Success(t *testing.T) {
	m := newTestModule(
		&mockCustomerPort{resp: sampleLookup()},
		&mockTrendingPort{rows: sampleTrending()},
		nil,
	)

	req := httptest.NewRequest("POST", "/api/v1/dashboard/login", strings.NewReader(`{"phone":"9999999999"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.app.Test(req)
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if body.Greeting == "" {
		t.Error("greeting must not be empty")
	}
	if len(body.OrderHistory.Columns) != 11 {
		t.Errorf("history columns = %d, want 11", len(body.OrderHistory.Columns))
	}
	if len(body.Trending.Columns) != 5 {
		t.Errorf("trending columns = %d, want 5", len(body.Trending.Columns))
	}
}

func TestLoginEndpoint_BlankPhoneStillReturnsTrending(t *testing.T) {
	m := newTestModule(
		&mockCustomerPort{resp: sampleLookup()},
		&mockTrendingPort{rows: sampleTrending()},
		nil,
	)

	req := httptest.NewRequest("POST", "/api/v1/dashboard/login", strings.NewReader(`{"phone":"   "}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.app.Test(req)
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if body.Greeting != invalidPhoneGreeting {
		t.Errorf("greeting = %q, want guest greeting", body.Greeting)
	}
	if len(body.OrderHistory.Rows) != 0 {
		t.Errorf("history rows = %d, want 0", len(body.OrderHistory.Rows))
	}
	if len(body.Trending.Rows) != 2 {
		t.Errorf("trending rows = %d, want 2", len(body.Trending.Rows))
	}
}

func TestLoginEndpoint_InvalidBody(t *testing.T) {
	m := newTestModule(
		&mockCustomerPort{resp: sampleLookup()},
		&mockTrendingPort{rows: sampleTrending()},
		nil,
	)

	req := httptest.NewRequest("POST", "/api/v1/dashboard/login", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.app.Test(req)
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestLoginEndpoint_UpstreamFailure(t *testing.T) {
	m := newTestModule(
		&mockCustomerPort{err: errors.New("store: customers: status 503")},
		&mockTrendingPort{rows: sampleTrending()},
		nil,
	)

	req := httptest.NewRequest("POST", "/api/v1/dashboard/login", strings.NewReader(`{"phone":"9999999999"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.app.Test(req)
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if body.Error != "upstream_unavailable" {
		t.Errorf("error = %q, want upstream_unavailable", body.Error)
	}
}

func TestHealthEndpoint(t *testing.T) {
	m := newTestModule(
		&mockCustomerPort{resp: sampleLookup()},
		&mockTrendingPort{rows: sampleTrending()},
		nil,
	)

	resp, err := m.app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAssetEndpoints(t *testing.T) {
	logo := []byte{0x89, 'P', 'N', 'G'}
	css := []byte("body { color: #333; }")
	m := newTestModule(
		&mockCustomerPort{resp: sampleLookup()},
		&mockTrendingPort{rows: sampleTrending()},
		assets.NewModuleWithAssets(logo, css),
	)

	resp, err := m.app.Test(httptest.NewRequest("GET", "/assets/logo.png", nil))
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("logo status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("logo content type = %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != string(logo) {
		t.Error("logo bytes differ")
	}

	resp, err = m.app.Test(httptest.NewRequest("GET", "/assets/style.css", nil))
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("css status = %d, want 200", resp.StatusCode)
	}
}

func TestAssetEndpoints_WithoutAssetsModule(t *testing.T) {
	m := newTestModule(
		&mockCustomerPort{resp: sampleLookup()},
		&mockTrendingPort{rows: sampleTrending()},
		nil,
	)

	resp, err := m.app.Test(httptest.NewRequest("GET", "/assets/logo.png", nil))
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestLandingPage(t *testing.T) {
	m := newTestModule(
		&mockCustomerPort{resp: sampleLookup()},
		&mockTrendingPort{rows: sampleTrending()},
		nil,
	)

	resp, err := m.app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Customer Login (Phone Number)") {
		t.Error("landing page missing login form")
	}
}
