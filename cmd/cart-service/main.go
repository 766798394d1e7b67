package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/cart-service/internal/api/handlers"
	"github.com/aaravmahajanofficial/cart-service/internal/api/middleware"
	"github.com/aaravmahajanofficial/cart-service/internal/clients/product"
	"github.com/aaravmahajanofficial/cart-service/internal/config"
	"github.com/aaravmahajanofficial/cart-service/internal/health"
	"github.com/aaravmahajanofficial/cart-service/internal/metrics"
	repository "github.com/aaravmahajanofficial/cart-service/internal/repositories"
	service "github.com/aaravmahajanofficial/cart-service/internal/services"
	"github.com/aaravmahajanofficial/cart-service/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup (no-op without an OTLP endpoint)
	tracingShutdown, err := telemetry.Setup(context.Background(), cfg)
	if err != nil {
		slog.Error("❌ Error setting up tracing", "error", err.Error())
		os.Exit(1)
	}

	// Database setup, runs the embedded migrations
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	productClient := product.NewHTTPClient(cfg.ProductService.BaseURL, cfg.ProductService.Timeout)
	cartService := service.NewCartService(repos.Cart, productClient)
	cartHandler := handlers.NewCartHandler(cartService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error setting up health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /cart", cartHandler.ListItems())
	routerMux.HandleFunc("GET /cart/{id}", cartHandler.GetItem())
	routerMux.HandleFunc("POST /cart", cartHandler.CreateItem())
	routerMux.HandleFunc("PUT /cart/{id}", cartHandler.UpdateItem())
	routerMux.HandleFunc("DELETE /cart/{id}", cartHandler.DeleteItem())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "cart-service")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {

		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := tracingShutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}

}
