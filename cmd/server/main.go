package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/hoaibao3112/Golang-webDienThoai/internal/api"
	"github.com/hoaibao3112/Golang-webDienThoai/internal/config"
	"github.com/hoaibao3112/Golang-webDienThoai/internal/handlers"
)

func main() {
	// Configure slog to output DEBUG level messages
	// This should be done as early as possible in main
	handlerOpts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	// Using TextHandler for console readability; for production JSONHandler might be preferred.
	logger := slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Init API client
	apiClient := api.NewClient(cfg.APIBaseURL)
	slog.Info("Using store API", "base_url", cfg.APIBaseURL)

	// 3. Session Setup
	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = cfg.CookieSecure // Configurable for production
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"
	if cfg.CookieDomain != "" {
		sessionStore.Options.Domain = cfg.CookieDomain
	}

	// 4. Init Templates
	templates := handlers.NewTemplateCache()
	if err := templates.Load("templates"); err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	// 5. Setup Handlers
	homeHandler := &handlers.HomeHandler{
		API:          apiClient,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	productHandler := &handlers.ProductHandler{
		API:          apiClient,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	authHandler := &handlers.AuthHandler{
		API:          apiClient,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	cartHandler := &handlers.CartHandler{
		API:          apiClient,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	checkoutHandler := &handlers.CheckoutHandler{
		API:          apiClient,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	orderHandler := &handlers.OrderHandler{
		API:          apiClient,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	profileHandler := &handlers.ProfileHandler{
		API:          apiClient,
		Templates:    templates,
		SessionStore: sessionStore,
	}

	mux := http.NewServeMux()

	// Static Files
	fileServer := http.FileServer(http.Dir("./static"))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	// Rate Limiter for credential endpoints (1 request per 2 seconds)
	rateLimiter := handlers.NewRateLimiter(2 * time.Second)

	// Public Routes
	mux.HandleFunc("/", homeHandler.Index)
	mux.HandleFunc("GET /products", productHandler.List)
	mux.HandleFunc("GET /products/{slug}", productHandler.Detail)

	// Auth
	mux.HandleFunc("GET /login", authHandler.LoginGet)
	mux.HandleFunc("POST /login", rateLimiter.Middleware(authHandler.LoginPost))
	mux.HandleFunc("GET /register", authHandler.RegisterGet)
	mux.HandleFunc("POST /register", rateLimiter.Middleware(authHandler.RegisterPost))
	mux.HandleFunc("/logout", authHandler.Logout)

	// Cart
	mux.HandleFunc("GET /cart", cartHandler.View)
	mux.HandleFunc("POST /cart/items", cartHandler.AddItem)
	mux.HandleFunc("POST /cart/items/{variantID}/update", cartHandler.UpdateItem)
	mux.HandleFunc("POST /cart/items/{variantID}/remove", cartHandler.RemoveItem)
	mux.HandleFunc("POST /cart/voucher", cartHandler.ApplyVoucher)

	// Checkout & Orders
	mux.HandleFunc("GET /checkout", checkoutHandler.Form)
	mux.HandleFunc("POST /checkout", checkoutHandler.Submit)
	mux.HandleFunc("GET /orders", orderHandler.List)
	mux.HandleFunc("GET /orders/{id}", orderHandler.Detail)

	// Account
	mux.HandleFunc("GET /profile", profileHandler.View)

	// 6. Middleware Setup
	CSRF := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure), // Configurable for production
		// Fix for "Forbidden - origin invalid": Trust local development origins
		csrf.TrustedOrigins([]string{"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port, "localhost", "127.0.0.1"}),
	)

	// Wrap the router with middleware chain
	// Chain: RequestID -> Logger -> Security Headers -> CSRF -> Mux
	handler := handlers.RequestIDMiddleware(
		handlers.LoggingMiddleware(
			handlers.SecurityHeadersMiddleware(
				CSRF(mux),
			),
		),
	)

	// 7. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port, // Use ENV var, default 8585 already set in ENV
		Handler: handler,
	}

	// Create a channel to listen for OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Goroutine to start the server
	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	// Block until a signal is received
	<-stop

	slog.Info("Shutting down server gracefully...")

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully.")
}
