package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/barsilva/bar-erp/internal/application/analytics"
	"github.com/barsilva/bar-erp/internal/application/auth"
	"github.com/barsilva/bar-erp/internal/application/ledger"
	"github.com/barsilva/bar-erp/internal/application/usecase"
	"github.com/barsilva/bar-erp/internal/domain/entity"
	"github.com/barsilva/bar-erp/internal/infrastructure/memory"
	infrapdf "github.com/barsilva/bar-erp/internal/infrastructure/pdf"
	httpRouter "github.com/barsilva/bar-erp/internal/interfaces/http"
	"github.com/barsilva/bar-erp/pkg/config"
	"github.com/barsilva/bar-erp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	// Armazém em memória: tudo vive no processo e some no restart.
	var store *memory.Store
	if cfg.Seed.Enabled {
		store = memory.NewSeeded(memory.SeedOptions{Days: cfg.Seed.Days})
		log.Info().Int("days", cfg.Seed.Days).Msg("dados de demonstração carregados")
	} else {
		store = memory.New()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash da senha do dono")
	}
	store.SetOwner(&entity.User{
		ID:           uuid.New().String(),
		Username:     cfg.Auth.Username,
		PasswordHash: string(hash),
		Name:         cfg.Auth.Name,
		CreatedAt:    time.Now(),
	})

	txRepo := memory.NewTransactionRepository(store)
	clientRepo := memory.NewClientRepository(store)
	supplierRepo := memory.NewSupplierRepository(store)
	inventoryRepo := memory.NewInventoryRepository(store)
	userRepo := memory.NewUserRepository(store)
	ledgerRunner := memory.NewLedgerRunner(store)

	transactionUC := usecase.NewTransactionUseCase(txRepo, nil)
	clientUC := usecase.NewClientUseCase(clientRepo, txRepo, nil)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)
	ledgerUC := ledger.NewUseCase(ledgerRunner, nil)
	dashboardUC := analytics.NewDashboardUseCase(txRepo, clientRepo, nil)

	dreGenerator := infrapdf.NewMarotoDREGenerator(cfg.Auth.Name)
	reportUC := analytics.NewReportUseCase(txRepo, dreGenerator, nil)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bar ERP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TransactionUC: transactionUC,
		ClientUC:      clientUC,
		SupplierUC:    supplierUC,
		InventoryUC:   inventoryUC,
		LedgerUC:      ledgerUC,
		DashboardUC:   dashboardUC,
		ReportUC:      reportUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
