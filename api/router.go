// Package api wires the controllers and middleware into the gin engine.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/gfsouzaTI/SnackTech/api/cliente"
	"github.com/gfsouzaTI/SnackTech/api/health"
	"github.com/gfsouzaTI/SnackTech/api/middleware"
	"github.com/gfsouzaTI/SnackTech/api/pedido"
	"github.com/gfsouzaTI/SnackTech/api/produto"
	"github.com/gfsouzaTI/SnackTech/config"
)

// Router binds the controllers to the engine.
type Router struct {
	engine            *gin.Engine
	config            *config.Config
	healthController  *health.Controller
	clienteController *cliente.Controller
	produtoController *produto.Controller
	pedidoController  *pedido.Controller
}

// NewRouter creates the engine with the middleware chain applied.
func NewRouter(
	cfg *config.Config,
	healthController *health.Controller,
	clienteController *cliente.Controller,
	produtoController *produto.Controller,
	pedidoController *pedido.Controller,
) *Router {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Order matters: the request id must exist before anything logs.
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logging())
	engine.Use(middleware.CORS(&cfg.CORS))
	engine.Use(middleware.RateLimit(&cfg.Server.RateLimit))

	return &Router{
		engine:            engine,
		config:            cfg,
		healthController:  healthController,
		clienteController: clienteController,
		produtoController: produtoController,
		pedidoController:  pedidoController,
	}
}

// SetupRoutes registers every route under /api/v1.
func (r *Router) SetupRoutes() {
	apiGroup := r.engine.Group("/api/v1")
	{
		r.healthController.RegisterRoutes(apiGroup)
		r.clienteController.RegisterRoutes(apiGroup)
		r.produtoController.RegisterRoutes(apiGroup)
		r.pedidoController.RegisterRoutes(apiGroup)
	}

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"name":    r.config.App.Name,
			"version": r.config.App.Version,
			"env":     r.config.App.Env,
			"health":  "/api/v1/health",
		})
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
