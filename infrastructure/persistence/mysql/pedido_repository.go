package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gfsouzaTI/SnackTech/domain/pedido"
	"github.com/gfsouzaTI/SnackTech/domain/shared"
)

// PedidoRepository persists orders in MySQL. The aggregate is written
// as a whole inside one transaction; on update the item rows are
// replaced so removals and renumbering never leave strays behind.
type PedidoRepository struct {
	db *gorm.DB
}

var _ pedido.Repository = (*PedidoRepository)(nil)

// NewPedidoRepository creates the repository.
func NewPedidoRepository(db *gorm.DB) *PedidoRepository {
	return &PedidoRepository{db: db}
}

// Inserir persists a newly created order.
func (r *PedidoRepository) Inserir(ctx context.Context, p *pedido.Pedido) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		po := toPedidoPO(p)
		if err := tx.Create(&po).Error; err != nil {
			return err
		}
		return insertItens(tx, p)
	})
}

// Atualizar persists the current state of an order and its items.
func (r *PedidoRepository) Atualizar(ctx context.Context, p *pedido.Pedido) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		po := toPedidoPO(p)
		if err := tx.Model(&PedidoPO{ID: po.ID}).
			Select("status", "valor_total", "moeda").
			Updates(&po).Error; err != nil {
			return err
		}
		if err := tx.Delete(&PedidoItemPO{}, "pedido_id = ?", p.ID()).Error; err != nil {
			return err
		}
		return insertItens(tx, p)
	})
}

// PesquisarPorIdentificacao finds an order by id, (nil, nil) when
// absent.
func (r *PedidoRepository) PesquisarPorIdentificacao(ctx context.Context, id string) (*pedido.Pedido, error) {
	var po PedidoPO
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&po).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.carregar(ctx, po)
}

// PesquisarPedidosParaPagamento lists orders awaiting payment, oldest
// first.
func (r *PedidoRepository) PesquisarPedidosParaPagamento(ctx context.Context) ([]*pedido.Pedido, error) {
	var pos []PedidoPO
	err := r.db.WithContext(ctx).
		Where("status = ?", string(pedido.StatusAguardandoPagamento)).
		Order("data_criacao asc").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}

	pedidos := make([]*pedido.Pedido, 0, len(pos))
	for _, po := range pos {
		p, err := r.carregar(ctx, po)
		if err != nil {
			return nil, err
		}
		pedidos = append(pedidos, p)
	}
	return pedidos, nil
}

// PesquisarUltimoPedidoCliente finds the customer's most recent order,
// (nil, nil) when the customer has none.
func (r *PedidoRepository) PesquisarUltimoPedidoCliente(ctx context.Context, clienteID string) (*pedido.Pedido, error) {
	var po PedidoPO
	err := r.db.WithContext(ctx).
		Where("cliente_id = ?", clienteID).
		Order("data_criacao desc").
		First(&po).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.carregar(ctx, po)
}

func (r *PedidoRepository) carregar(ctx context.Context, po PedidoPO) (*pedido.Pedido, error) {
	var itemPOs []PedidoItemPO
	err := r.db.WithContext(ctx).
		Where("pedido_id = ?", po.ID).
		Order("sequencial asc").
		Find(&itemPOs).Error
	if err != nil {
		return nil, err
	}

	itens := make([]pedido.ItemReconstructionDTO, len(itemPOs))
	for i, it := range itemPOs {
		itens[i] = pedido.ItemReconstructionDTO{
			ID:            it.ID,
			PedidoID:      it.PedidoID,
			Sequencial:    it.Sequencial,
			ProdutoID:     it.ProdutoID,
			Quantidade:    it.Quantidade,
			Observacao:    it.Observacao,
			ValorUnitario: shared.NewMoney(it.ValorUnitario, it.Moeda),
			Valor:         shared.NewMoney(it.Valor, it.Moeda),
		}
	}

	return pedido.RebuildFromDTO(pedido.ReconstructionDTO{
		ID:          po.ID,
		DataCriacao: po.DataCriacao,
		ClienteID:   po.ClienteID,
		Status:      pedido.Status(po.Status),
		Itens:       itens,
		ValorTotal:  shared.NewMoney(po.ValorTotal, po.Moeda),
	}), nil
}

func insertItens(tx *gorm.DB, p *pedido.Pedido) error {
	itens := p.Itens()
	if len(itens) == 0 {
		return nil
	}

	itemPOs := make([]PedidoItemPO, len(itens))
	for i, it := range itens {
		itemPOs[i] = PedidoItemPO{
			ID:            it.ID(),
			PedidoID:      it.PedidoID(),
			Sequencial:    it.Sequencial(),
			ProdutoID:     it.ProdutoID(),
			Quantidade:    it.Quantidade(),
			Observacao:    it.Observacao(),
			ValorUnitario: it.ValorUnitario().Amount(),
			Valor:         it.Valor().Amount(),
			Moeda:         it.Valor().Currency(),
		}
	}
	return tx.Create(&itemPOs).Error
}

func toPedidoPO(p *pedido.Pedido) PedidoPO {
	return PedidoPO{
		ID:          p.ID(),
		DataCriacao: p.DataCriacao(),
		ClienteID:   p.ClienteID(),
		Status:      string(p.Status()),
		ValorTotal:  p.ValorTotal().Amount(),
		Moeda:       p.ValorTotal().Currency(),
	}
}
