// Package main wires the HTTP server for the release orchestrator.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/lomakinroman97/release-orchestrator-server/internal/transport/http/server/handlers-fiber"
	"github.com/lomakinroman97/release-orchestrator-server/internal/usecase"

	"github.com/lomakinroman97/release-orchestrator-server/config"
	"github.com/lomakinroman97/release-orchestrator-server/internal/llm/yandexgpt"
	"github.com/lomakinroman97/release-orchestrator-server/internal/notes"
	"github.com/lomakinroman97/release-orchestrator-server/internal/oapi"
	"github.com/lomakinroman97/release-orchestrator-server/internal/repository"
	"github.com/lomakinroman97/release-orchestrator-server/internal/transport/http/middleware"
	"github.com/lomakinroman97/release-orchestrator-server/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	repo, err := repository.New(ctx, "github", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}

	gen := notes.New(log, yandexgpt.New(log, cfg.YandexGPT))
	uc := usecase.New(log, ctx, repo, gen, cfg.Pipeline.DefaultBranch)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	api.RegisterHandlers(serv, h)

	go func() {
		log.Infow("release orchestrator listening", "addr", cfg.ServerAddr())
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := serv.ShutdownWithContext(shutdownCtx); err != nil {
		log.Warnw("server shutdown error", "error", err)
	}
	if err := uc.Wait(shutdownCtx); err != nil {
		log.Warnw("scheduled pipelines still running at shutdown", "timeout", cfg.Server.ShutdownTimeout, "error", err)
	}
}
