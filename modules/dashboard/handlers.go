package dashboard

import (
	"github.com/gofiber/fiber/v2"
)

// setupRoutes configures all HTTP routes.
func (m *Module) setupRoutes() {
	m.app.Get("/health", m.healthHandler)

	// Landing page and brand assets
	m.app.Get("/", m.pageHandler)
	m.app.Get("/assets/logo.png", m.logoHandler)
	m.app.Get("/assets/style.css", m.cssHandler)

	// API v1 routes
	api := m.app.Group("/api/v1")
	api.Post("/dashboard/login", m.login)
}

// healthHandler handles GET /health.
func (m *Module) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "dashboard",
			"port":   m.port,
		},
	})
}

// login handles POST /api/v1/dashboard/login. The only error surfaced here
// is a failed exchange with the remote store; it maps to 502 with no retry.
func (m *Module) login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	resp, err := m.orch.Login(c.Context(), req.Phone)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error:   "upstream_unavailable",
			Message: err.Error(),
		})
	}

	return c.JSON(resp)
}

// pageHandler handles GET / with the branded landing page.
func (m *Module) pageHandler(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(indexPage)
}

// logoHandler handles GET /assets/logo.png.
func (m *Module) logoHandler(c *fiber.Ctx) error {
	if m.assets == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(m.assets.Logo())
}

// cssHandler handles GET /assets/style.css.
func (m *Module) cssHandler(c *fiber.Ctx) error {
	if m.assets == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	c.Set(fiber.HeaderContentType, "text/css; charset=utf-8")
	return c.Send(m.assets.CSS())
}
