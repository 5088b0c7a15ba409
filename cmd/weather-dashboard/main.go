package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/weather-dashboard/internal/api/http"
	"github.com/i474232898/weather-dashboard/internal/config"
	"github.com/i474232898/weather-dashboard/internal/dashboard"
	"github.com/i474232898/weather-dashboard/internal/scheduler"
	"github.com/i474232898/weather-dashboard/internal/weather"
	"github.com/i474232898/weather-dashboard/internal/weather/providers"
)

func main() {
	// Load configuration (.env is read by config.Load).
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	gen, err := newGenerator(cfg)
	if err != nil {
		log.Fatalf("failed to create %s generator: %v", cfg.Provider, err)
	}

	// Fail fast while the backend is down. No retries.
	breaker := providers.WithBreaker(gen, providers.BreakerConfig{
		MaxFailures: uint32(cfg.BreakerMaxFailures),
		OpenTimeout: cfg.BreakerTimeout,
	})

	client := weather.NewClient(breaker)

	board := dashboard.New(client, cfg.FallbackLocation)
	defer board.Close()

	// Initial load.
	board.Submit(cfg.DefaultLocation)

	sched := scheduler.New(cfg.RefreshInterval, board)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "weather-dashboard",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		// Forecast calls wait on a live web search.
		WriteTimeout: 90 * time.Second,
		ErrorHandler: httpapi.ErrorHandler,
	})

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "weather-dashboard",
			"generator": breaker.Name(),
			"breaker":   breaker.State(),
		})
	})

	httpapi.RegisterRoutes(app, client, board)

	go func() {
		log.Printf("INFO: listening on :%s (provider %s)", cfg.Port, breaker.Name())
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

func newGenerator(cfg *config.AppConfig) (weather.Generator, error) {
	if cfg.Provider == "openai" {
		gen, err := providers.NewOpenAIGenerator(providers.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
		})
		if err != nil {
			return nil, err
		}
		return gen, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	gen, err := providers.NewGeminiGenerator(ctx, providers.GeminiConfig{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.GeminiModel,
	})
	if err != nil {
		return nil, err
	}
	return gen, nil
}
