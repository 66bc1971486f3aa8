package trending

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"

	"github.com/pradeep-isb/Mistee/store"
)

// Module exposes the trending pipeline as a request-reply service. Like the
// customer module it owns its own store gateway.
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

// NewModule creates a trending module configured from the environment.
func NewModule() *Module {
	return &Module{}
}

// NewModuleWithService creates a trending module with an injected service.
// This constructor enables dependency injection for testing.
func NewModuleWithService(service *Service) *Module {
	return &Module{service: service}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "trending"
}

// RegisterServices registers the top request-reply service, reachable as
// "services.trending.top".
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "top", json.Unmarshal, json.Marshal, m.handleTop,
	); err != nil {
		return fmt.Errorf("failed to register top service: %w", err)
	}
	log.Printf("[trending] Registered services: services.trending.top")
	return nil
}

// Start opens the store gateway unless a service was injected.
func (m *Module) Start(ctx context.Context) error {
	if m.service != nil {
		log.Println("[trending] Module started with injected service")
		return nil
	}

	gw, err := store.Open(ctx, store.FromEnv())
	if err != nil {
		return fmt.Errorf("failed to open store gateway: %w", err)
	}
	m.gw = gw
	m.service = NewService(gw)

	log.Println("[trending] Module started successfully")
	return nil
}

// Stop closes the store gateway.
func (m *Module) Stop(_ context.Context) error {
	if m.gw != nil {
		m.gw.Close()
	}
	return nil
}

// Health reports whether the pipeline is ready.
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

func (m *Module) handleTop(ctx context.Context, _ TopRequest, _ *mono.Msg) (TopResponse, error) {
	products, err := m.service.TopProducts(ctx)
	if err != nil {
		return TopResponse{}, err
	}
	return TopResponse{Products: products}, nil
}
