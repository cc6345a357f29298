package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	jsoniter "github.com/json-iterator/go"

	"github.com/liora-app/liora/internal/api"
	"github.com/liora-app/liora/internal/config"
	"github.com/liora-app/liora/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Log.Fatalf("config load failed: %v", err)
	}
	logging.Init(cfg.LogLevel, cfg.Environment)

	app := fiber.New(fiber.Config{
		AppName:               "Liora",
		DisableStartupMessage: true,
		JSONEncoder:           jsoniter.Marshal,
		JSONDecoder:           jsoniter.Unmarshal,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(compress.New())

	handler := api.NewHandler(logging.Log)
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logging.Log.Errorf("server shutdown failed: %v", err)
		}
	}()

	logging.Log.Infof("Liora listening on http://0.0.0.0:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logging.Log.Fatalf("server exited: %v", err)
	}
}
