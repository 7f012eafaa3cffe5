package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SOLOMA2/RecipeApp/config"
	httpDelivery "github.com/SOLOMA2/RecipeApp/internal/delivery/http"
	"github.com/SOLOMA2/RecipeApp/internal/infrastructure/cache"
	"github.com/SOLOMA2/RecipeApp/internal/infrastructure/dictionary"
	"github.com/SOLOMA2/RecipeApp/internal/infrastructure/ninjas"
	"github.com/SOLOMA2/RecipeApp/internal/logger"
	"github.com/SOLOMA2/RecipeApp/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Setup(cfg.Log)
	log.Info().Str("environment", cfg.Server.Environment).Str("port", cfg.Server.Port).
		Msg("starting recipeapp nutrition service")

	if cfg.Nutrition.APIKey == "" {
		log.Warn().Msg("nutrition API key is not configured; external lookup is disabled, dictionary matching still works")
	} else {
		log.Info().Str("baseURL", cfg.Nutrition.BaseURL).
			Str("apiKey", maskKey(cfg.Nutrition.APIKey)).Msg("nutrition API configured")
	}

	entries := dictionary.Load(cfg.Dictionary.Path, log)
	matcher := usecase.NewMatcher(entries, log)

	memoryCache := cache.NewMemory()
	defer memoryCache.Close()

	client := ninjas.NewClient(cfg.Nutrition.APIKey, cfg.Nutrition.BaseURL, log)

	nutritionService := usecase.NewNutritionService(
		matcher,
		client,
		memoryCache,
		usecase.NutritionServiceConfig{CacheTTL: cfg.Cache.TTL},
		log,
	)

	handler := httpDelivery.NewHandler(nutritionService, log)
	router := httpDelivery.SetupRouter(cfg, handler, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// maskKey keeps only a short prefix of the API key for startup logs.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + "..."
}
