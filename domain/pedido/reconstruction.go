package pedido

import (
	"time"

	"github.com/gfsouzaTI/SnackTech/domain/shared"
)

// ReconstructionDTO rebuilds a Pedido from storage. Repository use only:
// fields are private, so reconstruction goes through this factory
// instead of setters or reflection.
type ReconstructionDTO struct {
	ID          string
	DataCriacao time.Time
	ClienteID   string
	Status      Status
	Itens       []ItemReconstructionDTO
	ValorTotal  shared.Money
}

// ItemReconstructionDTO rebuilds a single order line.
type ItemReconstructionDTO struct {
	ID            string
	PedidoID      string
	Sequencial    int
	ProdutoID     string
	Quantidade    int
	Observacao    string
	ValorUnitario shared.Money
	Valor         shared.Money
}

// RebuildFromDTO reconstructs the aggregate as persisted, without
// revalidating or recomputing. The stored total is trusted because it
// was derived by the aggregate before being saved.
func RebuildFromDTO(dto ReconstructionDTO) *Pedido {
	itens := make([]Item, len(dto.Itens))
	ultimoSequencial := 0
	for i, it := range dto.Itens {
		if it.Sequencial > ultimoSequencial {
			ultimoSequencial = it.Sequencial
		}
		itens[i] = Item{
			id:            it.ID,
			pedidoID:      it.PedidoID,
			sequencial:    it.Sequencial,
			produtoID:     it.ProdutoID,
			quantidade:    it.Quantidade,
			observacao:    it.Observacao,
			valorUnitario: it.ValorUnitario,
			valor:         it.Valor,
		}
	}

	return &Pedido{
		id:               dto.ID,
		dataCriacao:      dto.DataCriacao,
		clienteID:        dto.ClienteID,
		status:           dto.Status,
		itens:            itens,
		valorTotal:       dto.ValorTotal,
		ultimoSequencial: ultimoSequencial,
	}
}
