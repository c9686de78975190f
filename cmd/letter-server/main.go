package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ymorimoto/mirai-letter/internal/compose"
	"github.com/ymorimoto/mirai-letter/internal/config"
	"github.com/ymorimoto/mirai-letter/internal/httpapi"
	"github.com/ymorimoto/mirai-letter/internal/letterpolish"
	"github.com/ymorimoto/mirai-letter/internal/observability"
	"github.com/ymorimoto/mirai-letter/internal/ratelimit"
)

func main() {
	cfg := config.Load()

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := observability.SetupTracing(ctx, "mirai-letter", cfg.OTLPEndpoint)
	if err != nil {
		logger.Fatal("init tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, c := context.WithTimeout(context.Background(), 5*time.Second)
		defer c()
		_ = shutdownTracing(shutdownCtx)
	}()

	var cache compose.CacheStore
	if cfg.CachePath != "" {
		sqliteCache, err := compose.NewSQLiteCache(cfg.CachePath)
		if err != nil {
			logger.Fatal("init rewrite cache", zap.String("path", cfg.CachePath), zap.Error(err))
		}
		defer sqliteCache.Close()
		cache = sqliteCache
		logger.Info("using sqlite rewrite cache", zap.String("path", cfg.CachePath))
	} else {
		cache = compose.NewMemoryCache()
	}

	var factory compose.CallerFactory
	if !cfg.PolishDisabled {
		model := cfg.Model
		factory = func() (letterpolish.Caller, error) {
			return letterpolish.NewAnthropicCallerFromEnv(model)
		}
	} else {
		logger.Info("letter polish disabled, serving template letters only")
	}

	composer := compose.NewService(factory, cache, cfg.PolishTimeout, logger)
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(), cfg.RateLimitPerMinute, time.Minute)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpapi.NewHandler(composer, limiter, logger),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, c := context.WithTimeout(context.Background(), 10*time.Second)
		defer c()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("mirai-letter listening", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
