package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpadapter "github.com/funkybooboo/alle-sub000/internal/adapter/http"
	"github.com/funkybooboo/alle-sub000/internal/config"
	"github.com/funkybooboo/alle-sub000/internal/container"
	"github.com/funkybooboo/alle-sub000/pkg/logger"
	"github.com/funkybooboo/alle-sub000/pkg/translator"
)

const (
	shutdownTimeout = 30 * time.Second
	janitorInterval = time.Hour
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(log)
	defer func() {
		if err := log.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := container.New(cfg, log)
	defer func() {
		if err := c.Close(); err != nil {
			log.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	h, err := c.Handlers(ctx)
	if err != nil {
		log.Fatal("failed to build handlers", zap.String("storage", cfg.StorageDriver), zap.Error(err))
	}
	trashService, err := c.TrashService(ctx)
	if err != nil {
		log.Fatal("failed to build trash service", zap.Error(err))
	}

	go c.Hub().Run(ctx)
	go trashService.RunJanitor(ctx, janitorInterval)

	gin.SetMode(gin.ReleaseMode)
	r, err := httpadapter.NewRouter(log, h, cfg.CorsOrigins, cfg.TrustedProxies)
	if err != nil {
		log.Fatal("failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server",
			zap.String("addr", srv.Addr),
			zap.String("storage", cfg.StorageDriver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("could not start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
