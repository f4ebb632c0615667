package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecosync/internal/gateway"
	"ecosync/internal/handlers"
	"ecosync/internal/logger"
	"ecosync/internal/repository"
	"ecosync/internal/server"
	"ecosync/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title        EcoSync shift-report API
// @version      1.0
// @description  Operator dashboard backend: sensor readings, generated shift reports and history.
// @BasePath     /
func main() {
	cfg, err := loadConfig()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)

	gemini, err := gateway.NewGeminiClient(context.Background(), cfg.Gemini)
	if err != nil {
		log.Fatalw("failed to init gemini client", "err", err)
	}
	if !gemini.Configured() {
		log.Warnw("gemini api key not set; report generation will fail", "model", gemini.Model())
	}

	factoryLog := openFactoryLog(cfg.FactoryLog, log)
	defer func() {
		if cerr := factoryLog.Close(); cerr != nil {
			log.Errorw("failed to close factory log", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(factoryLog)
	services := service.NewService(repos, gemini, service.DefaultReading(), log)
	apiHandler := handlers.NewHandler(services, log).WithStreamInterval(cfg.WSInterval)

	srv := server.New(cfg.WriteTimeout)
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(srv, log)
}

// openFactoryLog returns the Kafka sink when enabled; any setup problem
// falls back to the no-op sink so the dashboard still serves.
func openFactoryLog(cfg factoryLogConfig, log *logger.Logger) repository.FactoryLog {
	if !cfg.Enabled {
		return repository.NopFactoryLog{}
	}
	fl, err := repository.NewKafkaFactoryLog(cfg.Brokers, cfg.Topic)
	if err != nil {
		log.Errorw("factory log disabled", "err", err)
		return repository.NopFactoryLog{}
	}
	log.Infow("factory log enabled", "brokers", cfg.Brokers, "topic", cfg.Topic)
	return fl
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
