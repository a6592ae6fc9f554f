package main

//go:generate swag init

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"demobank/advisor"
	"demobank/bank"
	_ "demobank/docs"
	"demobank/handlers"
)

// @title           Demo Bank API
// @version         1.0.0
// @description     Simulated consumer banking: accounts, transfers, bill pay, deposits, and an AI financial assistant. All state lives in memory per session.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in              header
// @name            Authorization

func main() {
	// Optional .env for local development
	godotenv.Load()

	// Configure structured logging
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// Session manager: transfer processing delay and purchase-simulator
	// interval are tunable, mostly so tests and local runs can shrink them.
	sessions := bank.NewManager(
		durationEnv("TRANSFER_DELAY_MS", 1500*time.Millisecond),
		durationEnv("SIM_INTERVAL_MS", 5*time.Second),
	)
	defer sessions.Close()

	handlers.Sessions = sessions
	handlers.Advice = advisor.New(os.Getenv("API_KEY"))

	// Router setup
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Mount("/api/v1", handlers.Router())

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)
	slog.Info("starting server", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// durationEnv reads a millisecond count from the environment. Zero disables
// the feature the value drives; absent or malformed values fall back.
func durationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		slog.Warn("ignoring invalid duration", "key", key, "value", v)
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
