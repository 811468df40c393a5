package pedido

import "context"

// Repository abstracts order persistence. Implementations persist the
// whole aggregate, items included, in one consistent write.
type Repository interface {
	// Inserir persists a newly created order.
	Inserir(ctx context.Context, p *Pedido) error

	// Atualizar persists the current state of an existing order and its
	// item collection.
	Atualizar(ctx context.Context, p *Pedido) error

	// PesquisarPorIdentificacao finds an order by id. Returns (nil, nil)
	// when absent.
	PesquisarPorIdentificacao(ctx context.Context, id string) (*Pedido, error)

	// PesquisarPedidosParaPagamento lists orders awaiting payment,
	// oldest first.
	PesquisarPedidosParaPagamento(ctx context.Context) ([]*Pedido, error)

	// PesquisarUltimoPedidoCliente finds the most recent order of a
	// customer. Returns (nil, nil) when the customer has none.
	PesquisarUltimoPedidoCliente(ctx context.Context, clienteID string) (*Pedido, error)
}
