// Package pedido exposes the order use cases over HTTP.
package pedido

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gfsouzaTI/SnackTech/api/response"
	pedidoapp "github.com/gfsouzaTI/SnackTech/application/pedido"
)

// Controller handles the order routes.
type Controller struct {
	pedidoService *pedidoapp.Service
}

// NewController creates the order controller.
func NewController(pedidoService *pedidoapp.Service) *Controller {
	return &Controller{pedidoService: pedidoService}
}

// RegisterRoutes registers the order routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	pedidoGroup := router.Group("/pedidos")
	{
		pedidoGroup.POST("", c.Iniciar)
		pedidoGroup.PUT("", c.Atualizar)
		pedidoGroup.PATCH("/:id/finalizar", c.FinalizarParaPagamento)
		pedidoGroup.GET("/aguardando-pagamento", c.ListarParaPagamento)
		pedidoGroup.GET("/:id", c.BuscarPorIdentificacao)
		pedidoGroup.GET("/ultimo/:cpf", c.BuscarUltimoPedidoCliente)
	}
}

// Iniciar starts an empty order. An empty CPF selects the default
// customer.
// POST /api/v1/pedidos
func (c *Controller) Iniciar(ctx *gin.Context) {
	var inicio pedidoapp.IniciarPedido
	if err := ctx.ShouldBindJSON(&inicio); err != nil {
		response.HandleBindingError(ctx, err)
		return
	}

	res := c.pedidoService.IniciarPedido(ctx.Request.Context(), inicio.CPFCliente)
	response.HandleResult(ctx, res, http.StatusCreated)
}

// Atualizar reconciles an order's item set with the submitted one.
// PUT /api/v1/pedidos
func (c *Controller) Atualizar(ctx *gin.Context) {
	var atualizacao pedidoapp.AtualizacaoPedido
	if err := ctx.ShouldBindJSON(&atualizacao); err != nil {
		response.HandleBindingError(ctx, err)
		return
	}

	res := c.pedidoService.AtualizarPedido(ctx.Request.Context(), atualizacao)
	response.HandleResult(ctx, res, http.StatusOK)
}

// FinalizarParaPagamento freezes the order for payment.
// PATCH /api/v1/pedidos/:id/finalizar
func (c *Controller) FinalizarParaPagamento(ctx *gin.Context) {
	res := c.pedidoService.FinalizarPedidoParaPagamento(ctx.Request.Context(), ctx.Param("id"))
	response.HandleResult(ctx, res, http.StatusOK)
}

// ListarParaPagamento lists the orders awaiting payment.
// GET /api/v1/pedidos/aguardando-pagamento
func (c *Controller) ListarParaPagamento(ctx *gin.Context) {
	res := c.pedidoService.ListarPedidosParaPagamento(ctx.Request.Context())
	response.HandleResult(ctx, res, http.StatusOK)
}

// BuscarPorIdentificacao finds an order by id.
// GET /api/v1/pedidos/:id
func (c *Controller) BuscarPorIdentificacao(ctx *gin.Context) {
	res := c.pedidoService.BuscarPorIdenticacao(ctx.Request.Context(), ctx.Param("id"))
	response.HandleResult(ctx, res, http.StatusOK)
}

// BuscarUltimoPedidoCliente finds the customer's most recent order.
// GET /api/v1/pedidos/ultimo/:cpf
func (c *Controller) BuscarUltimoPedidoCliente(ctx *gin.Context) {
	res := c.pedidoService.BuscarUltimoPedidoCliente(ctx.Request.Context(), ctx.Param("cpf"))
	response.HandleResult(ctx, res, http.StatusOK)
}
