// Package pedido contains the order aggregate, the consistency boundary
// of the system.
//
// A Pedido owns its items: the collection is mutated only through
// aggregate methods and exposed only as a copy. The monetary total is
// derived, recomputed as a full sum whenever the item set changes, so
// it can never drift from the items. Mutations are gated by the
// lifecycle status; once finalized for payment the order is read-only.
package pedido

import (
	"time"

	"github.com/google/uuid"

	"github.com/gfsouzaTI/SnackTech/domain/produto"
	"github.com/gfsouzaTI/SnackTech/domain/shared"
)

const observacaoMaxLen = 500

// Status is the order lifecycle state.
type Status string

const (
	// StatusIniciado marks a freshly created, still editable order.
	StatusIniciado Status = "INICIADO"

	// StatusAguardandoPagamento marks an order frozen for payment.
	// Transitions out of it belong to the payment subsystem.
	StatusAguardandoPagamento Status = "AGUARDANDO_PAGAMENTO"
)

// Pedido is the order aggregate root.
type Pedido struct {
	id          string
	dataCriacao time.Time
	clienteID   string
	status      Status
	itens       []Item
	valorTotal  shared.Money

	// ultimoSequencial is the high-water mark of issued sequence
	// numbers. Removing a line never releases its number.
	ultimoSequencial int
}

// Item is an order line. It lives inside exactly one Pedido and has no
// life of its own; external code only ever sees copies.
type Item struct {
	id            string
	pedidoID      string
	sequencial    int
	produtoID     string
	quantidade    int
	observacao    string
	valorUnitario shared.Money // product price captured at insertion
	valor         shared.Money // quantidade × valorUnitario
}

// NewPedido creates an editable, empty order bound to a customer.
func NewPedido(clienteID string) (*Pedido, error) {
	if clienteID == "" {
		return nil, shared.NewValidationError("pedido", "clienteID", "pedido precisa de um cliente")
	}

	return &Pedido{
		id:          uuid.New().String(),
		dataCriacao: time.Now(),
		clienteID:   clienteID,
		status:      StatusIniciado,
		valorTotal:  shared.NewReais(0),
	}, nil
}

// AdicionarItem appends a line for the given product, capturing the
// product's current price as the line's frozen unit value. The new line
// receives the next sequence number: previous max plus one, starting at
// one. Fails outside the Iniciado state and for non-positive quantities.
func (p *Pedido) AdicionarItem(prod *produto.Produto, quantidade int, observacao string) (int, error) {
	if p.status != StatusIniciado {
		return 0, newPedidoNaoEditavelError(p.status)
	}
	if err := validarItem(quantidade, observacao); err != nil {
		return 0, err
	}

	valor, err := prod.Valor().Multiply(quantidade)
	if err != nil {
		return 0, err
	}

	item := Item{
		id:            uuid.New().String(),
		pedidoID:      p.id,
		sequencial:    p.proximoSequencial(),
		produtoID:     prod.ID(),
		quantidade:    quantidade,
		observacao:    observacao,
		valorUnitario: prod.Valor(),
		valor:         valor,
	}

	p.itens = append(p.itens, item)
	if err := p.recalcularTotal(); err != nil {
		p.itens = p.itens[:len(p.itens)-1]
		return 0, err
	}
	p.ultimoSequencial = item.sequencial
	return item.sequencial, nil
}

// AtualizarItem changes the quantity and note of an existing line. The
// unit value stays the one captured at insertion; only the line value
// and the total are recomputed.
func (p *Pedido) AtualizarItem(sequencial, quantidade int, observacao string) error {
	if p.status != StatusIniciado {
		return newPedidoNaoEditavelError(p.status)
	}
	if err := validarItem(quantidade, observacao); err != nil {
		return err
	}

	idx := p.indexOf(sequencial)
	if idx < 0 {
		return newItemNaoEncontradoError(sequencial)
	}

	valor, err := p.itens[idx].valorUnitario.Multiply(quantidade)
	if err != nil {
		return err
	}

	p.itens[idx].quantidade = quantidade
	p.itens[idx].observacao = observacao
	p.itens[idx].valor = valor
	return p.recalcularTotal()
}

// RemoverItem removes the line with the given sequence number.
// Remaining lines keep their numbers; gaps preserve the historical
// ordering and numbers are never reused.
func (p *Pedido) RemoverItem(sequencial int) error {
	if p.status != StatusIniciado {
		return newPedidoNaoEditavelError(p.status)
	}

	idx := p.indexOf(sequencial)
	if idx < 0 {
		return newItemNaoEncontradoError(sequencial)
	}

	p.itens = append(p.itens[:idx], p.itens[idx+1:]...)
	return p.recalcularTotal()
}

// FinalizarParaPagamento irreversibly freezes the order for payment.
// The order must be Iniciado and hold at least one item; a second call
// fails rather than silently succeeding.
func (p *Pedido) FinalizarParaPagamento() error {
	if p.status != StatusIniciado {
		return newPedidoJaFinalizadoError(p.status)
	}
	if len(p.itens) == 0 {
		return newPedidoSemItensError()
	}

	p.status = StatusAguardandoPagamento
	return nil
}

// recalcularTotal derives the total as a full sum over current items,
// never incrementally.
func (p *Pedido) recalcularTotal() error {
	total := shared.NewReais(0)
	var err error
	for _, item := range p.itens {
		total, err = total.Add(item.valor)
		if err != nil {
			return err
		}
	}
	p.valorTotal = total
	return nil
}

// proximoSequencial issues the next sequence number from the
// per-order high-water mark. No global counter is involved, so
// concurrent orders never share state.
func (p *Pedido) proximoSequencial() int {
	return p.ultimoSequencial + 1
}

func (p *Pedido) indexOf(sequencial int) int {
	for i, item := range p.itens {
		if item.sequencial == sequencial {
			return i
		}
	}
	return -1
}

func validarItem(quantidade int, observacao string) error {
	if quantidade <= 0 {
		return shared.NewValidationError("pedido", "quantidade", "quantidade deve ser maior que zero")
	}
	if len(observacao) > observacaoMaxLen {
		return shared.NewValidationError("pedido", "observacao", "observação não pode exceder 500 caracteres")
	}
	return nil
}

func (p *Pedido) ID() string             { return p.id }
func (p *Pedido) DataCriacao() time.Time { return p.dataCriacao }
func (p *Pedido) ClienteID() string      { return p.clienteID }
func (p *Pedido) Status() Status         { return p.status }

// ValorTotal is always Σ(quantidade × valor unitário) over current items.
func (p *Pedido) ValorTotal() shared.Money { return p.valorTotal }

// Itens returns a copy of the item collection. Mutating the copy does
// not touch the aggregate.
func (p *Pedido) Itens() []Item {
	itens := make([]Item, len(p.itens))
	copy(itens, p.itens)
	return itens
}

func (i Item) ID() string                   { return i.id }
func (i Item) PedidoID() string             { return i.pedidoID }
func (i Item) Sequencial() int              { return i.sequencial }
func (i Item) ProdutoID() string            { return i.produtoID }
func (i Item) Quantidade() int              { return i.quantidade }
func (i Item) Observacao() string           { return i.observacao }
func (i Item) ValorUnitario() shared.Money  { return i.valorUnitario }
func (i Item) Valor() shared.Money          { return i.valor }
