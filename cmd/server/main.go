package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"notikums/config"
	_ "notikums/docs"
	"notikums/internal/adapters/token"
	delivery "notikums/internal/delivery/http"
	"notikums/internal/delivery/http/controllers"
	"notikums/internal/delivery/http/middleware"
	"notikums/internal/repository/postgres"
	"notikums/internal/services"
)

// @title Notikums API
// @version 1.0
// @description Event management API: organizers create events and hold a creator token, attendees register and hold their own user token.
// @BasePath /
// @securityDefinitions.apikey BasicToken
// @in header
// @name Authorization
// @description Literal credential header of the form "Basic <token>" (not HTTP Basic auth).
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.PingContext(context.Background()); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}
	if err := postgres.EnsureSchema(context.Background(), db); err != nil {
		logger.Error("bootstrap schema", "err", err)
		os.Exit(1)
	}
	logger.Info("database ready")

	eventRepo := postgres.NewEventRepository(db)
	attendeeRepo := postgres.NewAttendeeRepository(db)
	tokens := token.NewGenerator()

	eventService := services.NewEventService(eventRepo, tokens)
	attendeeService := services.NewAttendeeService(eventRepo, attendeeRepo, tokens)

	eventController := controllers.NewEventController(logger, eventService)
	attendeeController := controllers.NewAttendeeController(logger, attendeeService)

	mux := delivery.NewRouter(eventController, attendeeController)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "err", err)
	}
	logger.Info("server exited")
}
