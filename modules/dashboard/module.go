package dashboard

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pradeep-isb/Mistee/modules/assets"
	"github.com/pradeep-isb/Mistee/modules/customer"
	"github.com/pradeep-isb/Mistee/modules/trending"
)

// Module is the driving adapter: a Fiber HTTP server exposing the dashboard
// page, the login endpoint and the brand assets. It calls into the two
// pipelines via their ports.
type Module struct {
	app       *fiber.App
	orch      *Orchestrator
	customers customer.Port
	trends    trending.Port
	assets    *assets.Module
	port      int
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.DependentModule       = (*Module)(nil)
	_ mono.HealthCheckableModule = (*Module)(nil)
)

// NewModule creates a dashboard module. The listen port is read from PORT
// (default 3000).
func NewModule() *Module {
	port := 3000
	if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil && p > 0 {
		port = p
	}
	return &Module{port: port}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "dashboard"
}

// Dependencies returns the pipeline modules this adapter drives.
func (m *Module) Dependencies() []string {
	return []string{"customer", "trending"}
}

// SetDependencyServiceContainer receives service containers from the
// dependencies declared above.
func (m *Module) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "customer":
		m.customers = customer.NewAdapter(container)
	case "trending":
		m.trends = trending.NewAdapter(container)
	}
}

// SetAssets injects the assets module whose logo and stylesheet this server
// serves.
func (m *Module) SetAssets(a *assets.Module) {
	m.assets = a
}

// Start initializes the Fiber HTTP server.
func (m *Module) Start(_ context.Context) error {
	if m.customers == nil || m.trends == nil {
		return fmt.Errorf("pipeline dependencies not set")
	}
	m.orch = NewOrchestrator(m.customers, m.trends)

	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	m.app.Use(recover.New())
	m.setupRoutes()

	// Server availability is verified via Health().
	go func() {
		if err := m.app.Listen(fmt.Sprintf(":%d", m.port)); err != nil {
			log.Printf("[dashboard] HTTP server error: %v", err)
		}
	}()

	log.Printf("[dashboard] HTTP server started on :%d", m.port)
	return nil
}

// Stop shuts down the HTTP server.
func (m *Module) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[dashboard] Shutting down HTTP server...")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"port": m.port,
		},
	}
}

// errorHandler maps unhandled Fiber errors to the JSON error shape.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   "server_error",
		Message: message,
	})
}
