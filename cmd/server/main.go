// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mealia-backend/config"
	"mealia-backend/internal/auth"
	"mealia-backend/internal/db"
	"mealia-backend/internal/gpt"
	"mealia-backend/internal/menu"
	"mealia-backend/internal/payment"
	"mealia-backend/internal/server"
	"mealia-backend/pkg/logger"
)

func main() {
	l := logger.New()
	l.Info("Starting MealIA backend...")

	cfg, err := config.Load()
	if err != nil {
		l.Fatal("Failed to load config", err)
	}

	if cfg.GPT.APIKey == "" {
		l.Fatal("OpenAI API key is not configured")
	}
	if cfg.JWT.Secret == "" {
		l.Fatal("JWT secret is not configured")
	}

	// Connect to Postgres with retry; the database may come up after us.
	var database *db.PostgresDB
	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		database, err = db.NewPostgresDB(cfg.DB)
		if err == nil {
			break
		}
		l.Error("Failed to connect to database, retrying...", err)
		time.Sleep(time.Duration(i+1) * time.Second)
	}
	if database == nil {
		l.Fatal("Failed to connect to database after multiple attempts", err)
	}
	defer database.Close()

	stripeClient := payment.NewStripeClient(cfg.Stripe)

	gptClient := gpt.NewClient(cfg.GPT.APIKey).
		WithModel(cfg.GPT.Model).
		WithTemperature(float32(cfg.GPT.Temperature))

	sampler := menu.NewSampler(rand.New(rand.NewSource(time.Now().UnixNano())))
	generator := menu.NewGenerator(database, gptClient, sampler, l)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	google := auth.NewGoogleVerifier(cfg.Google.ClientID)

	handler := server.NewHandler(
		database, tokens, google, generator, stripeClient,
		cfg.Stripe.SuccessURL, cfg.Stripe.CancelURL, l,
	)
	router := server.NewRouter(handler)

	httpServer := server.NewServer(cfg.Server.Port, router, l)
	go func() {
		l.Info("Starting HTTP server...")
		if err := httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("Failed to start HTTP server", err)
		}
	}()

	// Wait for termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Stop(ctx); err != nil {
		l.Error("Error during HTTP server shutdown", err)
	}

	l.Info("Server stopped successfully")
}
