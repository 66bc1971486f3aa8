package customer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"

	"github.com/pradeep-isb/Mistee/store"
)

// Module exposes the customer lookup pipeline as a request-reply service.
// It owns its own store gateway; the gateway is opened on Start and closed
// on Stop.
type Module struct {
	gw      store.Gateway
	service *Service
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.ServiceProviderModule = (*Module)(nil)
	_ mono.HealthCheckableModule = (*Module)(nil)
)

// NewModule creates a customer module configured from the environment.
func NewModule() *Module {
	return &Module{}
}

// NewModuleWithService creates a customer module with an injected service.
// This constructor enables dependency injection for testing.
func NewModuleWithService(service *Service) *Module {
	return &Module{service: service}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "customer"
}

// RegisterServices registers the lookup request-reply service. The framework
// prefixes the name, so it is reachable as "services.customer.lookup".
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "lookup", json.Unmarshal, json.Marshal, m.handleLookup,
	); err != nil {
		return fmt.Errorf("failed to register lookup service: %w", err)
	}
	log.Printf("[customer] Registered services: services.customer.lookup")
	return nil
}

// Start opens the store gateway unless a service was injected.
func (m *Module) Start(ctx context.Context) error {
	if m.service != nil {
		log.Println("[customer] Module started with injected service")
		return nil
	}

	gw, err := store.Open(ctx, store.FromEnv())
	if err != nil {
		return fmt.Errorf("failed to open store gateway: %w", err)
	}
	m.gw = gw
	m.service = NewService(gw)

	log.Println("[customer] Module started successfully")
	return nil
}

// Stop closes the store gateway.
func (m *Module) Stop(_ context.Context) error {
	if m.gw != nil {
		m.gw.Close()
	}
	return nil
}

// Health reports whether the pipeline is ready to serve lookups.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	if m.service == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "store gateway not initialized",
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
	}
}

func (m *Module) handleLookup(ctx context.Context, req LookupRequest, _ *mono.Msg) (LookupResponse, error) {
	resp, err := m.service.Lookup(ctx, req.Phone)
	if err != nil {
		return LookupResponse{}, err
	}
	return *resp, nil
}
