package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/tubescope/tubescope-go/internal/analyzer"
	"github.com/tubescope/tubescope-go/internal/config"
	"github.com/tubescope/tubescope-go/internal/db"
	"github.com/tubescope/tubescope-go/internal/handler"
	"github.com/tubescope/tubescope-go/internal/middleware"
	"github.com/tubescope/tubescope-go/internal/repository"
	"github.com/tubescope/tubescope-go/internal/router"
	"github.com/tubescope/tubescope-go/internal/service"
	"github.com/tubescope/tubescope-go/internal/youtube"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "tubescope-api")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	handler.InitMetrics(pool)

	yt := youtube.New(cfg.YouTubeAPIKey)
	sampleRepo := repository.NewSampleRepo(pool)

	analyzeSvc := service.NewAnalyzeService(
		yt, sampleRepo, cache,
		analyzer.DefaultConfig(),
		cfg.SampleSize, cfg.SampleMaxAge,
	)

	worker := service.NewSampleWorker(sampleRepo, yt, cache, cfg.SampleRefresh, cfg.SampleMaxAge, cfg.SampleSize)
	go worker.Start(ctx)
	defer worker.Stop()

	app := fiber.New(fiber.Config{
		AppName:      "TubeScope API",
		ServerHeader: "TubeScope",
	})

	h := &router.Handlers{
		Analyze: handler.NewAnalyzeHandler(analyzeSvc),
		Health:  handler.NewHealthHandler(pool, cache.Client()),
	}
	router.Setup(app, h, cfg.CORSOrigins)

	log.Printf("TubeScope backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
