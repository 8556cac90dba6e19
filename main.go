package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/user-account-service/config"
	"github.com/example/user-account-service/modules/api"
	"github.com/example/user-account-service/modules/users"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== User Account Service ===")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework
	// Order: independent modules first, then dependent modules
	app.Register(users.NewModule(cfg)) // Independent module (provides user services)
	app.Register(api.NewModule(cfg))   // Depends on users module

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(cfg)

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

func printStartupInfo(cfg config.Config) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost%s):", cfg.HTTPAddr)
	log.Println("")
	log.Println("  Public Endpoints:")
	log.Println("  POST   /users        - Register a new user")
	log.Println("  POST   /users/login  - Login and get an access token")
	log.Println("  GET    /health       - Health check")
	log.Println("")
	log.Println("  Protected Endpoints (require Bearer token):")
	log.Println("  GET    /users        - List users (paginated)")
	log.Println("  GET    /users/:id    - Get a user by ID")
	log.Println("  PUT    /users/:id    - Update a user's name fields")
	log.Println("  DELETE /users/:id    - Delete a user")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
