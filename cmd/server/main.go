package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wordrush/wordrush/internal/api"
	"github.com/wordrush/wordrush/internal/factory"
	"github.com/wordrush/wordrush/internal/language"
	redisstorage "github.com/wordrush/wordrush/internal/storage/redis"
)

func main() {
	cfg := &Config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}

func run(ctx context.Context, cfg *Config) error {
	// Set up logging with JSON output
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Build factory config
	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.storage,
	}
	if cfg.storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.redisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		return err
	}

	// Load word lists from files; languages without a file fall back to
	// whatever storage carries. A round in a language with no list loaded
	// skips the dictionary check entirely.
	for lang, path := range cfg.parsedWordLists() {
		if !language.Supported(language.Language(lang)) {
			logger.Error("unsupported word list language", slog.String("language", lang))
			return language.ErrUnsupportedLanguage
		}
		if err := app.WordListService.LoadFromFile(ctx, language.Language(lang), path); err != nil {
			logger.Error("failed to load word list",
				slog.String("language", lang),
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
			return err
		}
		logger.Info("word list loaded",
			slog.String("language", lang),
			slog.Int("words", app.WordListService.WordCount(language.Language(lang))),
		)
	}
	for _, lang := range language.All() {
		if app.WordListService.Loaded(lang) {
			continue
		}
		if err := app.WordListService.LoadFromStorage(ctx, lang); err != nil {
			logger.Warn("could not load word list from storage",
				slog.String("language", string(lang)),
				slog.String("error", err.Error()),
			)
		}
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		AuthService:     app.AuthService,
		RoundController: app.RoundController,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.bind
	serverConfig.Port = cfg.port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			return err
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			return err
		}
	}

	logger.Info("server stopped")
	return nil
}
