package pedido

import (
	"fmt"

	"github.com/gfsouzaTI/SnackTech/domain/shared"
)

// newItemNaoEncontradoError reports a remove/update against a sequence
// number the order does not hold.
func newItemNaoEncontradoError(sequencial int) error {
	return shared.NewNotFoundError("pedido", fmt.Sprintf("item de sequencial %d não encontrado no pedido", sequencial))
}

// newPedidoNaoEditavelError reports a mutation attempted outside the
// Iniciado state.
func newPedidoNaoEditavelError(status Status) error {
	return shared.NewInvalidStateError("pedido", fmt.Sprintf("pedido com status %s não pode ser modificado", status))
}

// newPedidoSemItensError reports finalization of an empty order.
func newPedidoSemItensError() error {
	return shared.NewBusinessRuleError("pedido", "pedido precisa de pelo menos um item para ser finalizado")
}

// newPedidoJaFinalizadoError reports a second finalization attempt.
func newPedidoJaFinalizadoError(status Status) error {
	return shared.NewInvalidStateError("pedido", fmt.Sprintf("pedido com status %s não pode ser finalizado", status))
}
