// Package cmd assembles and runs the application.
package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/gfsouzaTI/SnackTech/api"
	apicliente "github.com/gfsouzaTI/SnackTech/api/cliente"
	"github.com/gfsouzaTI/SnackTech/api/health"
	apipedido "github.com/gfsouzaTI/SnackTech/api/pedido"
	apiproduto "github.com/gfsouzaTI/SnackTech/api/produto"
	clienteapp "github.com/gfsouzaTI/SnackTech/application/cliente"
	pedidoapp "github.com/gfsouzaTI/SnackTech/application/pedido"
	produtoapp "github.com/gfsouzaTI/SnackTech/application/produto"
	"github.com/gfsouzaTI/SnackTech/config"
	clientedomain "github.com/gfsouzaTI/SnackTech/domain/cliente"
	pedidodomain "github.com/gfsouzaTI/SnackTech/domain/pedido"
	produtodomain "github.com/gfsouzaTI/SnackTech/domain/produto"
	"github.com/gfsouzaTI/SnackTech/infrastructure/persistence/memory"
	"github.com/gfsouzaTI/SnackTech/infrastructure/persistence/mysql"
	"github.com/gfsouzaTI/SnackTech/pkg/execution"
	"github.com/gfsouzaTI/SnackTech/pkg/logger"
)

// App is the assembled application.
type App struct {
	config *config.Config
	router *api.Router
}

// NewApp loads the configuration, initializes the logger, selects the
// persistence backend and wires the services and controllers.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Log, cfg.App.Env); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	var (
		clienteRepo clientedomain.Repository
		produtoRepo produtodomain.Repository
		pedidoRepo  pedidodomain.Repository
		sqlDB       *sql.DB
	)

	switch cfg.Database.Type {
	case "mysql":
		logger.Info("Using MySQL persistence", zap.String("database", cfg.Database.Database))

		db, err := mysql.FromDatabaseConfig(&cfg.Database, cfg.Log.Level).Connect()
		if err != nil {
			return nil, err
		}
		if err := mysql.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
		if err := mysql.SeedClientePadrao(db); err != nil {
			return nil, err
		}

		clienteRepo = mysql.NewClienteRepository(db)
		produtoRepo = mysql.NewProdutoRepository(db)
		pedidoRepo = mysql.NewPedidoRepository(db)
		sqlDB, _ = db.DB()
	default:
		logger.Info("Using in-memory persistence")

		clienteRepo = memory.NewClienteRepository()
		produtoRepo = memory.NewProdutoRepository()
		pedidoRepo = memory.NewPedidoRepository()
	}

	sink := execution.NewZapSink(logger.Get())

	clienteService := clienteapp.NewService(clienteRepo, sink)
	produtoService := produtoapp.NewService(produtoRepo, sink)
	pedidoService := pedidoapp.NewService(pedidoRepo, clienteRepo, produtoRepo, sink)

	router := api.NewRouter(
		cfg,
		health.NewController(cfg, sqlDB),
		apicliente.NewController(clienteService),
		apiproduto.NewController(produtoService),
		apipedido.NewController(pedidoService),
	)
	router.SetupRoutes()

	return &App{config: cfg, router: router}, nil
}

// Run serves HTTP until SIGINT or SIGTERM, then shuts down within the
// configured timeout.
func (a *App) Run() error {
	srv := &http.Server{
		Addr:         ":" + a.config.Server.Port,
		Handler:      a.router.GetEngine(),
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting",
			zap.String("port", a.config.Server.Port),
			zap.String("env", a.config.App.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-sigChan:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	logger.Info("Server stopped")
	return logger.Sync()
}
