package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/aliasparty/backend/internal/application/config"
	"github.com/aliasparty/backend/internal/application/constant"
	"github.com/aliasparty/backend/internal/application/metric"
	"github.com/aliasparty/backend/internal/infra/adapters/memory"
	"github.com/aliasparty/backend/internal/infra/adapters/postgres"
	"github.com/aliasparty/backend/internal/infra/adapters/postgres/repository"
	"github.com/aliasparty/backend/internal/infra/ports/http/handlers"
	"github.com/aliasparty/backend/internal/infra/ports/http/server"
	"github.com/aliasparty/backend/internal/usecase"
)

func runApp() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	slog.SetDefault(
		slog.New(
			slog.NewJSONHandler(
				os.Stdout,
				&slog.HandlerOptions{Level: slog.LevelInfo},
			),
		),
	)

	cfg, err := config.New()
	if err != nil {
		slog.Error("parse config", slog.Any(constant.Error, err))
		os.Exit(1)
	}

	dbConn, err := postgres.NewPostgres(ctx, cfg.Postgres.DSN())
	if err != nil {
		slog.Error("connect to postgres", slog.Any(constant.Error, err))
		os.Exit(1)
	}
	defer dbConn.Close()

	userRepo := repository.NewUserRepo(dbConn)
	roomRepo := repository.NewRoomRepo(dbConn)
	teamRepo := repository.NewTeamRepo(dbConn)
	messageRepo := repository.NewMessageRepo(dbConn)
	resultRepo := repository.NewRoundResultRepo(dbConn)
	subsRepo := memory.NewRoomSubscribersRepository()

	userUsecase := usecase.NewUserUsecase([]byte(cfg.JWTSecret), userRepo)
	roomUsecase := usecase.NewRoomUsecase(roomRepo, teamRepo, resultRepo, subsRepo)
	teamUsecase := usecase.NewTeamUsecase(roomRepo, teamRepo, userRepo, resultRepo, subsRepo)
	messageUsecase := usecase.NewMessageUsecase(roomRepo, messageRepo, subsRepo)

	// Seed the default rooms before the listener starts. A failed seed
	// aborts startup rather than serving a half-seeded directory.
	bootstrapper := usecase.NewBootstrapper(roomRepo, teamRepo)
	if err := bootstrapper.Run(ctx); err != nil {
		slog.Error("bootstrap", slog.Any(constant.Error, err))
		os.Exit(1)
	}

	authHandler := handlers.NewAuthHandler(userUsecase)
	roomHandler := handlers.NewRoomHandler(roomUsecase)
	teamHandler := handlers.NewTeamHandler(teamUsecase)
	messageHandler := handlers.NewMessageHandler(messageUsecase)
	wsHandler := handlers.NewWebSocketHandler(cfg, roomUsecase, messageUsecase, subsRepo)

	echoSrv := server.New(cfg, authHandler, roomHandler, teamHandler, messageHandler, wsHandler)

	metricsSrv := metric.NewServer()

	echoSrvCh := make(chan error, 1)
	metricsSrvCh := make(chan error, 1)

	go func() {
		echoSrvCh <- echoSrv.Start(":" + cfg.Port)
	}()

	go func() {
		metricsSrvCh <- metricsSrv.Start(":" + cfg.MetricPort)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down servers due to context cancel")
	case err := <-echoSrvCh:
		slog.Error(
			"HTTP server failed",
			slog.Any(constant.Error, err),
		)
		os.Exit(1)
	case err := <-metricsSrvCh:
		slog.Error(
			"Metrics server failed",
			slog.Any(constant.Error, err),
		)
		os.Exit(1)
	}

	timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer timeoutCancel()

	if err := echoSrv.Shutdown(timeoutCtx); err != nil {
		slog.Error("Failed to gracefully shutdown HTTP server", slog.Any(constant.Error, err))
	}

	if err := metricsSrv.Shutdown(timeoutCtx); err != nil {
		slog.Error("Failed to gracefully shutdown metric server", slog.Any(constant.Error, err))
	}
}
