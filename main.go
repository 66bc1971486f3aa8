package main

import (
	"context"
	"log"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/joho/godotenv"

	"github.com/pradeep-isb/Mistee/modules/assets"
	"github.com/pradeep-isb/Mistee/modules/customer"
	"github.com/pradeep-isb/Mistee/modules/dashboard"
	"github.com/pradeep-isb/Mistee/modules/trending"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load .env when present; deployments set the environment directly.
	_ = godotenv.Load()

	log.Println("=== MishTee-Magic Customer Dashboard ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework.
	// Order: independent modules first, then modules with dependencies.
	// The assets module downloads the brand assets during Start; a failed
	// download aborts startup.
	assetsModule := assets.NewModule()
	dashboardModule := dashboard.NewModule()
	dashboardModule.SetAssets(assetsModule)

	app.Register(assetsModule)          // startup dependency (brand assets)
	app.Register(customer.NewModule())  // customer lookup pipeline
	app.Register(trending.NewModule())  // trending pipeline
	app.Register(dashboardModule)       // driving adapter (depends on both pipelines)

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("Modules:")
	log.Println("  - assets:    brand logo + stylesheet, downloaded at startup")
	log.Println("  - customer:  phone lookup, greeting, order history (services.customer.lookup)")
	log.Println("  - trending:  store-wide top products (services.trending.top)")
	log.Println("  - dashboard: Fiber HTTP server, driving adapter")
	log.Println("")
	log.Println("REST API Endpoints (http://localhost:3000):")
	log.Println("  GET    /                          - Branded landing page")
	log.Println("  POST   /api/v1/dashboard/login    - Submit phone, get greeting + tables")
	log.Println("  GET    /assets/logo.png           - Brand logo")
	log.Println("  GET    /assets/style.css          - Brand stylesheet")
	log.Println("  GET    /health                    - Health check")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
