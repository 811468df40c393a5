// Package cliente exposes the customer use cases over HTTP.
package cliente

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gfsouzaTI/SnackTech/api/response"
	clienteapp "github.com/gfsouzaTI/SnackTech/application/cliente"
)

// Controller handles the customer routes.
type Controller struct {
	clienteService *clienteapp.Service
}

// NewController creates the customer controller.
func NewController(clienteService *clienteapp.Service) *Controller {
	return &Controller{clienteService: clienteService}
}

// RegisterRoutes registers the customer routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	clienteGroup := router.Group("/clientes")
	{
		clienteGroup.POST("", c.Cadastrar)
		clienteGroup.GET("/cpf/:cpf", c.IdentificarPorCpf)
		clienteGroup.GET("/padrao", c.SelecionarClientePadrao)
	}
}

// Cadastrar registers a customer.
// POST /api/v1/clientes
func (c *Controller) Cadastrar(ctx *gin.Context) {
	var cadastro clienteapp.CadastroCliente
	if err := ctx.ShouldBindJSON(&cadastro); err != nil {
		response.HandleBindingError(ctx, err)
		return
	}

	res := c.clienteService.Cadastrar(ctx.Request.Context(), cadastro)
	response.HandleResult(ctx, res, http.StatusCreated)
}

// IdentificarPorCpf finds a customer by CPF.
// GET /api/v1/clientes/cpf/:cpf
func (c *Controller) IdentificarPorCpf(ctx *gin.Context) {
	cpf := ctx.Param("cpf")

	res := c.clienteService.IdentificarPorCpf(ctx.Request.Context(), cpf)
	response.HandleResult(ctx, res, http.StatusOK)
}

// SelecionarClientePadrao returns the default customer's identity.
// GET /api/v1/clientes/padrao
func (c *Controller) SelecionarClientePadrao(ctx *gin.Context) {
	res := c.clienteService.SelecionarClientePadrao(ctx.Request.Context())
	response.HandleResult(ctx, res, http.StatusOK)
}
