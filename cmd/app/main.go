package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bagdasarian/member-search/internal/config"
	"github.com/bagdasarian/member-search/internal/db"
	"github.com/bagdasarian/member-search/internal/handler"
	"github.com/bagdasarian/member-search/internal/handler/server"
	"github.com/bagdasarian/member-search/internal/logging"
	"github.com/bagdasarian/member-search/internal/query"
	"github.com/bagdasarian/member-search/internal/repository/postgres"
	"github.com/bagdasarian/member-search/internal/seed"
	"github.com/bagdasarian/member-search/internal/service"
)

func main() {
	cfg := config.Load()

	logger := logging.Must(cfg.Logger)
	defer logger.Sync()

	database := db.MustLoad(cfg)
	logger.Info("successfully connected to database")
	defer database.Close()

	if cfg.Database.RunMigrations {
		if err := db.RunMigrations(cfg.Database); err != nil {
			logger.Fatal("migrations failed", zap.Error(err))
		}
		logger.Info("migrations applied", zap.String("path", cfg.Database.MigrationsPath))
	}

	engine := postgres.NewEngine(database, query.Postgres, logger)

	if cfg.App.Profile == config.ProfileLocal {
		if err := seed.Run(context.Background(), database, engine, logger); err != nil {
			logger.Fatal("seed failed", zap.Error(err))
		}
	}

	teamRepo := postgres.NewTeamRepository(engine)
	memberRepo := postgres.NewMemberRepository(engine)
	statsRepo := postgres.NewStatsRepository(engine)

	memberService := service.NewMemberService(memberRepo, cfg.Paging, logger)
	teamService := service.NewTeamService(teamRepo, memberRepo, logger)
	statsService := service.NewStatsService(statsRepo)

	h := handler.NewHandler(memberService, teamService, statsService, logger)
	srv := server.NewServer(h, cfg.App.Addr(), logger)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
}
