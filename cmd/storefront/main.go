package main

import (
	"github.com/gin-gonic/gin"

	cartAPI "github.com/smesiteli/storefront/internal/cart/api"
	cartRepo "github.com/smesiteli/storefront/internal/cart/repository"
	cartService "github.com/smesiteli/storefront/internal/cart/service"
	catalogAPI "github.com/smesiteli/storefront/internal/catalog/api"
	catalogRepo "github.com/smesiteli/storefront/internal/catalog/repository"
	catalogService "github.com/smesiteli/storefront/internal/catalog/service"
	"github.com/smesiteli/storefront/internal/platform/config"
	"github.com/smesiteli/storefront/internal/platform/database"
	"github.com/smesiteli/storefront/internal/platform/logger"
	"github.com/smesiteli/storefront/internal/schemaorg"
)

func main() {
	serverCfg := config.LoadServerConfig("8080")
	siteCfg, err := config.LoadSiteConfig()
	if err != nil {
		logger.Fatal("Failed to load site configuration", err)
	}

	logger.Info("Starting Storefront Service...")

	// Catalog backing store: compiled-in seed set by default, Postgres
	// when CATALOG_SOURCE=postgres.
	var repo catalogRepo.CatalogRepository
	switch config.LoadCatalogSource() {
	case config.CatalogSourcePostgres:
		dbCfg := config.LoadCatalogDBConfig()
		db, err := database.Connect(dbCfg.DSN)
		if err != nil {
			logger.Fatal("Failed to connect to catalog database", err)
		}
		defer db.Close()
		repo = catalogRepo.NewPostgresCatalogRepository(db)
		logger.Info("Catalog source: postgres")
	default:
		repo = catalogRepo.NewSeededMemoryRepository()
		logger.Info("Catalog source: memory seed")
	}

	catalogSvc, err := catalogService.NewCatalogService(repo, config.LoadCatalogRefreshSpec())
	if err != nil {
		logger.Fatal("Failed to initialize catalog service", err)
	}
	defer catalogSvc.Close()

	// Cart store: Redis when configured, in-process map otherwise.
	var carts cartRepo.CartRepository
	redisCfg := config.LoadRedisConfig()
	if redisCfg.Addr != "" {
		client, err := database.ConnectRedis(redisCfg.Addr, redisCfg.Password, redisCfg.DB)
		if err != nil {
			logger.Fatal("Failed to connect to redis", err)
		}
		defer client.Close()
		carts = cartRepo.NewRedisCartRepository(client, redisCfg.CartTTL)
		logger.Info("Cart store: redis at " + redisCfg.Addr)
	} else {
		carts = cartRepo.NewMemoryCartRepository()
		logger.Info("Cart store: in-memory")
	}

	schema := schemaorg.NewBuilder(siteCfg)
	cartSvc := cartService.NewCartService(carts, catalogSvc)

	catalogHandler := catalogAPI.NewCatalogHandler(catalogSvc, schema)
	cartHandler := cartAPI.NewCartHandler(cartSvc)

	router := gin.Default()
	router.RedirectTrailingSlash = false

	apiV1 := router.Group("/api/v1")
	catalogHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1)

	logger.Info("Storefront Service running on port " + serverCfg.Port)
	if err := router.Run(serverCfg.Port); err != nil {
		logger.Error("Failed to run Storefront Service server", err, nil)
	}
}
