package app

import (
	"context"
	"fmt"

	"microcredit/internal/config"
	"microcredit/internal/handlers"
	"microcredit/internal/logger"
	"microcredit/internal/repositories"
	"microcredit/internal/routes"
	"microcredit/internal/services"
	"microcredit/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "microcredit/docs"
)

func Run() {
	cfg := config.LoadConfig()
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	// === Store ===
	// The API stays up without a database; data endpoints then report the
	// store as unavailable instead of crashing the process.
	var companyRepo *repositories.CompanyRepository
	if cfg.Database.URL != "" {
		db, err := storage.Connect(context.Background(), cfg.Database.URL, cfg.Database.Name, log)
		if err != nil {
			log.Warn("document store unreachable, starting degraded", zap.Error(err))
		} else {
			companyRepo = repositories.NewCompanyRepository(db)
			defer func() {
				if err := db.Client().Disconnect(context.Background()); err != nil {
					log.Error("closing store client", zap.Error(err))
				}
			}()
		}
	} else {
		log.Warn("DATABASE_URL not set, starting without a store")
	}

	// === Services ===
	var store services.CompanyStore
	if companyRepo != nil {
		store = companyRepo
	}
	companyService := services.NewCompanyService(store)

	// === Handlers ===
	companyHandler := handlers.NewCompanyHandler(companyService)
	var diag handlers.StoreDiagnostics
	if companyRepo != nil {
		diag = companyRepo
	}
	healthHandler := handlers.NewHealthHandler(diag)

	// === Gin ===
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(router, companyHandler, healthHandler)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("server listening", zap.String("addr", listenAddr))
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
