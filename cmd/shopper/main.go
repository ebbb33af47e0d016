package main

import (
	"fmt"

	"github.com/comparehub/shopper/config"
	httpDelivery "github.com/comparehub/shopper/internal/delivery/http"
	"github.com/comparehub/shopper/internal/infrastructure/cache"
	"github.com/comparehub/shopper/internal/infrastructure/catalog"
	"github.com/comparehub/shopper/internal/infrastructure/state"
	"github.com/comparehub/shopper/internal/logger"
	"github.com/comparehub/shopper/internal/usecase"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatal("failed to load configuration", zap.Error(err))
	}

	logger.Init(cfg.Server.Environment)
	defer logger.Sync()
	log := logger.L()

	log.Info("starting comparehub shopper gateway",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("catalog", cfg.Catalog.BaseURL))

	stateStore, err := state.NewFileStore(cfg.State.Dir)
	if err != nil {
		log.Fatal("failed to open state store", zap.Error(err))
	}

	catalogClient := catalog.NewClient(catalog.Config{
		BaseURL:    cfg.Catalog.BaseURL,
		Timeout:    cfg.Catalog.Timeout,
		RatePerSec: cfg.Catalog.RatePerSec,
		Burst:      cfg.Catalog.Burst,
	})
	if cfg.Server.Environment == "development" {
		catalogClient.SetDebug(true)
		log.Info("catalog client debug mode enabled")
	}

	// Detail and analytics reads are cached; list-level reads stay live.
	cachedCatalog := cache.NewCachingCatalog(catalogClient, cache.NewMemoryCache(), cfg.Cache.TTL)

	images := usecase.NewImageResolver(usecase.DefaultImageCatalog(), "")
	compareService := usecase.NewCompareService(cachedCatalog, images)

	selection := state.NewSelectionStore(stateStore)
	wishlist := state.NewWishlistStore(stateStore)
	preferences := state.NewPreferencesStore(stateStore)

	market := usecase.Market{
		Condition: cfg.Market.DefaultCondition,
		Core:      cfg.Market.CoreStores,
	}

	handler := httpDelivery.NewHandler(
		cachedCatalog,
		compareService,
		images,
		selection,
		wishlist,
		preferences,
		market,
	)

	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("server listening", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
