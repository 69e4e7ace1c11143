// Package main - entry point for the fincalc API server
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"fincalc/api"
	"fincalc/core/account"
	"fincalc/core/estimator"
	"fincalc/core/finance"
	"fincalc/internal/cache"
	"fincalc/internal/config"
	"fincalc/internal/logging"
)

const version = "0.1.0"

func main() {
	cfgFile := flag.String("config", "", "config file path")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg := config.Get()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(loaded)
		cfg = loaded
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	listenAddr := cfg.Server.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	opts := api.Options{
		Version:  version,
		Accounts: account.NewService(account.NewMemoryRepository()),
		Defaults: finance.Defaults{
			StandardDeduction:  cfg.Defaults.StandardDeduction,
			MaxEMIPercent:      cfg.Defaults.MaxEMIPercent,
			CompoundingPerYear: cfg.Defaults.CompoundingPerYear,
		},
	}

	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	switch cfg.Cache.Backend {
	case "redis":
		redisCache := cache.NewRedis(cfg.Cache.RedisAddr, ttl)
		defer redisCache.Close()
		opts.Cache = redisCache
	case "memory":
		opts.Cache = cache.NewMemory(ttl)
	}

	if model, err := estimator.LoadLinearModel(cfg.Estimator.ModelPath); err == nil {
		opts.Model = model
		logging.Info("loan model loaded", zap.String("path", cfg.Estimator.ModelPath))
	} else {
		logging.Info("no loan model, estimates use the rule of thumb", zap.Error(err))
	}

	if cfg.Server.RateLimit.Enabled {
		limiter := api.NewRateLimiter(
			cfg.Server.RateLimit.Requests,
			time.Duration(cfg.Server.RateLimit.WindowSeconds)*time.Second,
		)
		defer limiter.Stop()
		opts.Limiter = limiter
	}

	server := &http.Server{
		Addr:         listenAddr,
		Handler:      api.NewServer(opts),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logging.Info("fincalc API listening", zap.String("addr", listenAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logging.Error("server failed", zap.Error(err))
		return
	case <-quit:
		logging.Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logging.Error("shutdown failed", zap.Error(err))
	}
}
