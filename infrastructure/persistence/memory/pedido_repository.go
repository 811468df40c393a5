package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gfsouzaTI/SnackTech/domain/pedido"
)

// PedidoRepository is an in-memory pedido.Repository.
type PedidoRepository struct {
	mu      sync.RWMutex
	pedidos map[string]*pedido.Pedido
	ordem   map[string]int // insertion order, breaks creation-time ties
	seq     int
}

// NewPedidoRepository creates an empty repository.
func NewPedidoRepository() *PedidoRepository {
	return &PedidoRepository{
		pedidos: make(map[string]*pedido.Pedido),
		ordem:   make(map[string]int),
	}
}

func (r *PedidoRepository) Inserir(_ context.Context, p *pedido.Pedido) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.ordem[p.ID()] = r.seq
	r.pedidos[p.ID()] = clonePedido(p)
	return nil
}

func (r *PedidoRepository) Atualizar(_ context.Context, p *pedido.Pedido) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pedidos[p.ID()] = clonePedido(p)
	return nil
}

func (r *PedidoRepository) PesquisarPorIdentificacao(_ context.Context, id string) (*pedido.Pedido, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.pedidos[id]
	if !ok {
		return nil, nil
	}
	return clonePedido(p), nil
}

func (r *PedidoRepository) PesquisarPedidosParaPagamento(_ context.Context) ([]*pedido.Pedido, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var aguardando []*pedido.Pedido
	for _, p := range r.pedidos {
		if p.Status() == pedido.StatusAguardandoPagamento {
			aguardando = append(aguardando, clonePedido(p))
		}
	}
	sort.Slice(aguardando, func(i, j int) bool {
		return r.ordem[aguardando[i].ID()] < r.ordem[aguardando[j].ID()]
	})
	return aguardando, nil
}

func (r *PedidoRepository) PesquisarUltimoPedidoCliente(_ context.Context, clienteID string) (*pedido.Pedido, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ultimo *pedido.Pedido
	for _, p := range r.pedidos {
		if p.ClienteID() != clienteID {
			continue
		}
		if ultimo == nil || r.ordem[p.ID()] > r.ordem[ultimo.ID()] {
			ultimo = p
		}
	}
	if ultimo == nil {
		return nil, nil
	}
	return clonePedido(ultimo), nil
}

// clonePedido hands out an independent aggregate so callers never share
// state with the store.
func clonePedido(p *pedido.Pedido) *pedido.Pedido {
	itens := p.Itens()
	dtos := make([]pedido.ItemReconstructionDTO, len(itens))
	for i, item := range itens {
		dtos[i] = pedido.ItemReconstructionDTO{
			ID:            item.ID(),
			PedidoID:      item.PedidoID(),
			Sequencial:    item.Sequencial(),
			ProdutoID:     item.ProdutoID(),
			Quantidade:    item.Quantidade(),
			Observacao:    item.Observacao(),
			ValorUnitario: item.ValorUnitario(),
			Valor:         item.Valor(),
		}
	}

	return pedido.RebuildFromDTO(pedido.ReconstructionDTO{
		ID:          p.ID(),
		DataCriacao: p.DataCriacao(),
		ClienteID:   p.ClienteID(),
		Status:      p.Status(),
		Itens:       dtos,
		ValorTotal:  p.ValorTotal(),
	})
}

var _ pedido.Repository = (*PedidoRepository)(nil)
