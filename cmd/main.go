package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/almousleck/glasslink/internal/auth"
	"github.com/almousleck/glasslink/internal/auth/jwt"
	"github.com/almousleck/glasslink/internal/cache/redis"
	"github.com/almousleck/glasslink/internal/config"
	"github.com/almousleck/glasslink/internal/ctrl"
	hdl "github.com/almousleck/glasslink/internal/hdl/http"
	"github.com/almousleck/glasslink/internal/notify"
	"github.com/almousleck/glasslink/internal/observability/metrics/prometheus"
	"github.com/almousleck/glasslink/internal/observability/tracing/jaeger"
	"github.com/almousleck/glasslink/internal/repo/db"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func mustRegisterLogger(mode string) {
	switch mode {
	case "prod":
		zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	case "dev":
		zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	}
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			zap.L().Panic("panic occurred", zap.Any("error", err))
			os.Exit(1)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.MustLoad()
	mustRegisterLogger(conf.Server.Mode)

	go prometheus.New(conf.Server.Port + 5).Start(ctx)
	go jaeger.Start(ctx, conf.ServiceName, conf.Jaeger)

	cache := redis.New(conf.Redis)
	repo := db.New(conf)

	var notifier ctrl.Notifier
	switch conf.Notify.Mode {
	case "smtp":
		notifier = notify.NewEmailGateway(conf)
	default:
		notifier = notify.NewConsole()
	}

	tok := jwt.New(conf)
	svc := ctrl.New(tok, auth.New(), repo, cache, notifier, conf.Auth)
	h := hdl.New(tok, svc)

	zap.L().Info(
		fmt.Sprintf(
			"Starting server on %v://%v:%v",
			conf.Server.Scheme,
			conf.Server.Domain,
			conf.Server.Port,
		),
	)
	go h.Start(conf.Server.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	zap.L().Info("Shutting down gracefully...")
	sCtx, sCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer sCancel()

	if err := h.Close(sCtx); err != nil {
		zap.L().Warn("Error closing handler", zap.Error(err))
	}

	if err := cache.Close(); err != nil {
		zap.L().Warn("Failed to close connection to Redis: ", zap.Error(err))
	}

	if err := repo.Close(sCtx); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}

	os.Exit(0)
}
