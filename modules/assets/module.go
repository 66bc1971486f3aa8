package assets

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-monolith/mono"
	"golang.org/x/sync/errgroup"
)

// Default locations of the brand assets on the project's GitHub repo.
const (
	defaultLogoURL = "https://github.com/pradeep-isb/Mistee/blob/main/" +
		"ChatGPT%20Image%20Dec%2030,%202025,%2008_31_30%20PM.png?raw=true"
	defaultCSSURL = "https://raw.githubusercontent.com/pradeep-isb/Mistee/refs/heads/main/style.css"
)

// extraCSS is appended to the downloaded stylesheet.
const extraCSS = `
body, .dashboard-container {
    background-color: #FAF9F6;
    color: #333333;
}
`

// Module downloads the logo and stylesheet once at startup. A failed
// download fails Start, which aborts application startup: the dashboard does
// not serve without its brand assets.
type Module struct {
	logoURL string
	cssURL  string
	client  *http.Client

	logo []byte
	css  []byte
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.HealthCheckableModule = (*Module)(nil)
)

// NewModule creates an assets module. Asset locations can be overridden with
// LOGO_URL and BRAND_CSS_URL.
func NewModule() *Module {
	logoURL := os.Getenv("LOGO_URL")
	if logoURL == "" {
		logoURL = defaultLogoURL
	}
	cssURL := os.Getenv("BRAND_CSS_URL")
	if cssURL == "" {
		cssURL = defaultCSSURL
	}
	return &Module{
		logoURL: logoURL,
		cssURL:  cssURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// NewModuleWithAssets creates an assets module preloaded with asset bytes.
// This constructor enables dependency injection for testing.
func NewModuleWithAssets(logo, css []byte) *Module {
	return &Module{logo: logo, css: css}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "assets"
}

// Start downloads both assets concurrently and fails on the first error.
func (m *Module) Start(ctx context.Context) error {
	if m.logo != nil && m.css != nil {
		log.Println("[assets] Module started with injected assets")
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logo, err := m.fetch(ctx, m.logoURL)
		if err != nil {
			return fmt.Errorf("logo download failed: %w", err)
		}
		m.logo = logo
		return nil
	})
	g.Go(func() error {
		css, err := m.fetch(ctx, m.cssURL)
		if err != nil {
			return fmt.Errorf("stylesheet download failed: %w", err)
		}
		m.css = append(css, []byte(extraCSS)...)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	log.Printf("[assets] Brand assets downloaded (logo %d bytes, stylesheet %d bytes)", len(m.logo), len(m.css))
	return nil
}

// Stop does nothing; the module holds no resources beyond memory.
func (m *Module) Stop(_ context.Context) error {
	return nil
}

// Health reports whether the assets are loaded.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	if m.logo == nil || m.css == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "brand assets not loaded",
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"logo_bytes":       len(m.logo),
			"stylesheet_bytes": len(m.css),
		},
	}
}

// Logo returns the downloaded logo image.
func (m *Module) Logo() []byte {
	return m.logo
}

// CSS returns the downloaded stylesheet with the brand tweaks appended.
func (m *Module) CSS() []byte {
	return m.css
}

func (m *Module) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s fetching %s", resp.Status, url)
	}
	return io.ReadAll(resp.Body)
}
