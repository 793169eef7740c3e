package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"homecalc/internal/assist"
	"homecalc/internal/config"
	"homecalc/internal/directory"
	"homecalc/internal/handler"
	"homecalc/internal/llm"
	"homecalc/internal/logger"
	"homecalc/internal/registry"
	"homecalc/internal/server"
	"homecalc/internal/tools"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	client, err := buildLLMClient(cfg, log)
	if err != nil {
		log.Fatal("llm client init failed", zap.Error(err))
	}
	defer func() { _ = client.Close() }()

	dir := directory.NewFromConfig(cfg.Directory.PostgresDSN, cfg.Directory.CacheSize)
	toolReg := tools.NewRegistry(tools.NewProviderLookup(dir, cfg.LLM.ToolTimeout))

	svc := assist.New(registry.Default(), client, toolReg, cfg.LLM.MaxToolRounds, log)
	h := handler.New(svc, log)
	srv := server.New(cfg.Port, server.NewMux(h, log), log)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("shutdown incomplete", zap.Error(err))
	}
}

func buildLLMClient(cfg *config.Config, log *zap.Logger) (llm.Client, error) {
	var inner llm.Client
	if cfg.LLM.Fake || cfg.LLM.APIKey == "" {
		log.Info("no Gemini API key configured, using fake LLM")
		inner = llm.NewFakeClient()
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		cli, err := llm.NewGeminiClient(ctx, cfg.LLM.APIKey, cfg.LLM.Model)
		if err != nil {
			return nil, err
		}
		inner = cli
	}
	return llm.Wrap(inner,
		llm.WithLogging(log),
		llm.RateLimitFromEnv(),
		llm.Timeout(cfg.LLM.Timeout),
	), nil
}
