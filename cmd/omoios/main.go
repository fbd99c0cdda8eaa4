// OmoiOS orchestration core — provides the HTTP API, runs the
// scheduling loop, and supervises agent runtime sessions.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/omoi-os/omoios/pkg/anomaly"
	"github.com/omoi-os/omoios/pkg/api"
	"github.com/omoi-os/omoios/pkg/cleanup"
	"github.com/omoi-os/omoios/pkg/collab"
	"github.com/omoi-os/omoios/pkg/config"
	"github.com/omoi-os/omoios/pkg/database"
	"github.com/omoi-os/omoios/pkg/dispatch"
	"github.com/omoi-os/omoios/pkg/events"
	"github.com/omoi-os/omoios/pkg/guardian"
	"github.com/omoi-os/omoios/pkg/locks"
	"github.com/omoi-os/omoios/pkg/monitor"
	"github.com/omoi-os/omoios/pkg/scheduler"
	"github.com/omoi-os/omoios/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting OmoiOS core",
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Event bus and transactional publisher
	bus := events.NewBus(cfg.Events.BufferSize)
	defer bus.Close()
	publisher := events.NewPublisher(dbClient.Client, bus)

	// 4. Locks
	lockManager := locks.NewManager(dbClient.Client, publisher, cfg.Locks)
	lockSweeper := locks.NewSweeper(lockManager, cfg.Locks)
	lockSweeper.Start(ctx)
	defer lockSweeper.Stop()

	// 5. Anomaly detection and health monitoring
	learner := anomaly.NewBaselineLearner(dbClient.Client, cfg.Anomaly)
	anomalyScorer := anomaly.NewScorer(cfg.Anomaly)
	registry := monitor.NewRegistry()
	promRegistry := prometheus.NewRegistry()
	metrics := monitor.NewMetrics(promRegistry)
	healthMonitor := monitor.New(dbClient.Client, publisher, learner, anomalyScorer, registry, metrics, cfg.Monitor, cfg.Anomaly)

	// 6. Agent runtime — external HTTP service when configured. Without
	// it the core still schedules; assignment is reported but nothing
	// executes, which is the single-binary development mode.
	var runtime dispatch.AgentRuntime
	var sandbox dispatch.SandboxExecutor
	if addr := os.Getenv("AGENT_RUNTIME_URL"); addr != "" {
		runtime = dispatch.NewHTTPRuntime(addr)
		slog.Info("Agent runtime configured", "addr", addr)
	} else {
		slog.Warn("AGENT_RUNTIME_URL not set — tasks will be assigned but not executed")
	}
	if addr := os.Getenv("SANDBOX_URL"); addr != "" {
		sandbox = dispatch.NewHTTPSandbox(addr)
		slog.Info("Sandbox executor configured", "addr", addr)
	}

	// 7. Scheduler and dispatcher. The dispatcher is the orchestrator's
	// Dispatch hook and reports outcomes back through its transitions.
	schedScorer := scheduler.NewScorer(cfg.Scheduler)
	orchestrator := scheduler.NewOrchestrator(dbClient.Client, publisher, lockManager, schedScorer, nil, cfg.Scheduler)

	var dispatcher *dispatch.Manager
	if runtime != nil {
		dispatcher = dispatch.NewManager(dbClient.Client, runtime, orchestrator, registry, cfg.Dispatcher)
		orchestrator.SetDispatcher(dispatcher)
	}

	// Start runs orphan recovery before the first tick.
	if err := orchestrator.Start(ctx); err != nil {
		slog.Error("Failed to start orchestrator", "error", err)
		os.Exit(1)
	}

	healthMonitor.Start(ctx)

	// 8. Collaboration bus
	var delivery *collab.Delivery
	if sandbox != nil || runtime != nil {
		delivery = collab.NewDelivery(dbClient.Client, sandbox, runtime, cfg.Collab.DeliveryTimeout)
	}
	collabBus := collab.NewBus(dbClient.Client, publisher, delivery)

	// 9. Guardian quarantines anomalous agents and requeues their work.
	agentGuardian := guardian.New(dbClient.Client, publisher, learner, orchestrator, cfg.Guardian, anomalyScorer, registry)
	agentGuardian.Start(ctx)

	// 10. Retention sweeps
	retention := cleanup.NewService(dbClient.Client, cfg.Retention)
	retention.Start(ctx)

	// 11. Domain services and HTTP server
	ticketService := services.NewTicketService(dbClient.Client, publisher)
	taskService := services.NewTaskService(dbClient.Client)
	agentService := services.NewAgentService(dbClient.Client, publisher, registry)
	eventService := services.NewEventService(dbClient.Client)

	httpServer := api.NewServer(
		dbClient,
		ticketService,
		taskService,
		agentService,
		eventService,
		lockManager,
		collabBus,
		orchestrator,
		promRegistry,
	)

	// 12. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("OmoiOS core started successfully")

	// 13. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 14. Graceful shutdown. In-flight sessions get the grace budget;
	// anything still running afterwards is orphan-recovered on next boot.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Dispatcher.GracefulShutdownTimeout)
	defer cancel()

	retention.Stop()
	agentGuardian.Stop()
	healthMonitor.Stop()
	orchestrator.Stop()

	if dispatcher != nil {
		done := make(chan struct{})
		go func() {
			dispatcher.Stop()
			close(done)
		}()
		select {
		case <-done:
			slog.Info("Dispatcher stopped gracefully")
		case <-shutdownCtx.Done():
			slog.Warn("Shutdown timeout exceeded — in-flight tasks will be orphan-recovered")
		}
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
