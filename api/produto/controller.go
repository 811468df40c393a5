// Package produto exposes the catalog use cases over HTTP.
package produto

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gfsouzaTI/SnackTech/api/response"
	produtoapp "github.com/gfsouzaTI/SnackTech/application/produto"
)

// Controller handles the product routes.
type Controller struct {
	produtoService *produtoapp.Service
}

// NewController creates the product controller.
func NewController(produtoService *produtoapp.Service) *Controller {
	return &Controller{produtoService: produtoService}
}

// RegisterRoutes registers the product routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	produtoGroup := router.Group("/produtos")
	{
		produtoGroup.POST("", c.Criar)
		produtoGroup.PUT("/:id", c.Editar)
		produtoGroup.DELETE("/:id", c.Remover)
		produtoGroup.GET("/:id", c.BuscarPorIdentificacao)
		produtoGroup.GET("/categoria/:categoriaId", c.BuscarPorCategoria)
	}
}

// Criar adds a product to the catalog.
// POST /api/v1/produtos
func (c *Controller) Criar(ctx *gin.Context) {
	var novo produtoapp.NovoProduto
	if err := ctx.ShouldBindJSON(&novo); err != nil {
		response.HandleBindingError(ctx, err)
		return
	}

	res := c.produtoService.CriarNovoProduto(ctx.Request.Context(), novo)
	response.HandleResult(ctx, res, http.StatusCreated)
}

// Editar updates a product.
// PUT /api/v1/produtos/:id
func (c *Controller) Editar(ctx *gin.Context) {
	var edicao produtoapp.EdicaoProduto
	if err := ctx.ShouldBindJSON(&edicao); err != nil {
		response.HandleBindingError(ctx, err)
		return
	}

	res := c.produtoService.EditarProduto(ctx.Request.Context(), ctx.Param("id"), edicao)
	response.HandleResult(ctx, res, http.StatusOK)
}

// Remover removes a product from the catalog.
// DELETE /api/v1/produtos/:id
func (c *Controller) Remover(ctx *gin.Context) {
	res := c.produtoService.RemoverProduto(ctx.Request.Context(), ctx.Param("id"))
	response.HandleResult(ctx, res, http.StatusOK)
}

// BuscarPorIdentificacao finds a product by id.
// GET /api/v1/produtos/:id
func (c *Controller) BuscarPorIdentificacao(ctx *gin.Context) {
	res := c.produtoService.BuscarPorIdentificacao(ctx.Request.Context(), ctx.Param("id"))
	response.HandleResult(ctx, res, http.StatusOK)
}

// BuscarPorCategoria lists the products of a category.
// GET /api/v1/produtos/categoria/:categoriaId
func (c *Controller) BuscarPorCategoria(ctx *gin.Context) {
	categoriaID, err := strconv.Atoi(ctx.Param("categoriaId"))
	if err != nil {
		response.HandleBindingError(ctx, err)
		return
	}

	res := c.produtoService.BuscarPorCategoria(ctx.Request.Context(), categoriaID)
	response.HandleResult(ctx, res, http.StatusOK)
}
