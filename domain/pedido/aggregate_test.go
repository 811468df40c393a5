package pedido

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfsouzaTI/SnackTech/domain/produto"
	"github.com/gfsouzaTI/SnackTech/domain/shared"
)

func novoProduto(t *testing.T, nome string, centavos int64) *produto.Produto {
	t.Helper()
	p, err := produto.NewProduto(nome, "", shared.NewReais(centavos), produto.CategoriaLanche)
	require.NoError(t, err)
	return p
}

func TestNewPedido(t *testing.T) {
	p, err := NewPedido("cliente-1")

	require.NoError(t, err)
	assert.NotEmpty(t, p.ID())
	assert.Equal(t, "cliente-1", p.ClienteID())
	assert.Equal(t, StatusIniciado, p.Status())
	assert.Empty(t, p.Itens())
	assert.Equal(t, int64(0), p.ValorTotal().Amount())
	assert.False(t, p.DataCriacao().IsZero())
}

func TestNewPedidoSemCliente(t *testing.T) {
	p, err := NewPedido("")

	assert.Nil(t, p)
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
}

func TestAdicionarItemSnapshotsPrice(t *testing.T) {
	p, _ := NewPedido("cliente-1")
	lanche := novoProduto(t, "X-Burger", 500)

	seq, err := p.AdicionarItem(lanche, 2, "sem cebola")
	require.NoError(t, err)
	assert.Equal(t, 1, seq)

	// A later price change must not touch the captured values.
	require.NoError(t, lanche.Atualizar("X-Burger", "", shared.NewReais(900), produto.CategoriaLanche))

	itens := p.Itens()
	require.Len(t, itens, 1)
	assert.Equal(t, int64(500), itens[0].ValorUnitario().Amount())
	assert.Equal(t, int64(1000), itens[0].Valor().Amount())
	assert.Equal(t, int64(1000), p.ValorTotal().Amount())
}

func TestTotalIsSumOverItems(t *testing.T) {
	p, _ := NewPedido("cliente-x")

	// create → add (qty 2 × 5.00) → add (qty 1 × 3.50) → total 13.50
	_, err := p.AdicionarItem(novoProduto(t, "P", 500), 2, "")
	require.NoError(t, err)
	_, err = p.AdicionarItem(novoProduto(t, "Q", 350), 1, "")
	require.NoError(t, err)

	assert.Equal(t, int64(1350), p.ValorTotal().Amount())

	require.NoError(t, p.FinalizarParaPagamento())
	assert.Equal(t, StatusAguardandoPagamento, p.Status())
}

func TestAdicionarItemValidation(t *testing.T) {
	p, _ := NewPedido("cliente-1")
	prod := novoProduto(t, "X-Burger", 500)

	_, err := p.AdicionarItem(prod, 0, "")
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	_, err = p.AdicionarItem(prod, -3, "")
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	_, err = p.AdicionarItem(prod, 1, strings.Repeat("x", 501))
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	assert.Empty(t, p.Itens(), "falha de validação não adiciona item")
	assert.Equal(t, int64(0), p.ValorTotal().Amount())
}

func TestSequenciaisAreMonotonicAndNeverReused(t *testing.T) {
	p, _ := NewPedido("cliente-1")
	prod := novoProduto(t, "X-Burger", 500)

	seq1, _ := p.AdicionarItem(prod, 1, "")
	seq2, _ := p.AdicionarItem(prod, 1, "")
	seq3, _ := p.AdicionarItem(prod, 1, "")
	assert.Equal(t, []int{1, 2, 3}, []int{seq1, seq2, seq3})

	// Removing the highest line must not release its number.
	require.NoError(t, p.RemoverItem(seq3))
	seq4, _ := p.AdicionarItem(prod, 1, "")
	assert.Equal(t, 4, seq4)

	// Gaps are kept: removing a middle line does not renumber the rest.
	require.NoError(t, p.RemoverItem(seq2))
	sequenciais := make([]int, 0, len(p.Itens()))
	for _, item := range p.Itens() {
		sequenciais = append(sequenciais, item.Sequencial())
	}
	assert.Equal(t, []int{1, 4}, sequenciais)
}

func TestRemoverItemRecomputesTotal(t *testing.T) {
	p, _ := NewPedido("cliente-1")
	seq1, _ := p.AdicionarItem(novoProduto(t, "A", 500), 2, "")
	_, err := p.AdicionarItem(novoProduto(t, "B", 350), 1, "")
	require.NoError(t, err)

	require.NoError(t, p.RemoverItem(seq1))

	assert.Equal(t, int64(350), p.ValorTotal().Amount())
}

func TestRemoverItemInexistente(t *testing.T) {
	p, _ := NewPedido("cliente-1")

	err := p.RemoverItem(7)

	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestAtualizarItemKeepsUnitPrice(t *testing.T) {
	p, _ := NewPedido("cliente-1")
	prod := novoProduto(t, "X-Burger", 500)
	seq, _ := p.AdicionarItem(prod, 1, "")

	require.NoError(t, prod.Atualizar("X-Burger", "", shared.NewReais(900), produto.CategoriaLanche))
	require.NoError(t, p.AtualizarItem(seq, 3, "bem passado"))

	itens := p.Itens()
	assert.Equal(t, 3, itens[0].Quantidade())
	assert.Equal(t, "bem passado", itens[0].Observacao())
	assert.Equal(t, int64(500), itens[0].ValorUnitario().Amount())
	assert.Equal(t, int64(1500), p.ValorTotal().Amount())
}

func TestAtualizarItemInexistente(t *testing.T) {
	p, _ := NewPedido("cliente-1")

	err := p.AtualizarItem(3, 1, "")

	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestFinalizarPedidoVazio(t *testing.T) {
	p, _ := NewPedido("cliente-1")

	err := p.FinalizarParaPagamento()

	assert.True(t, errors.Is(err, shared.ErrBusinessRule))
	assert.Equal(t, StatusIniciado, p.Status())
}

func TestFinalizarDuasVezesFalha(t *testing.T) {
	p, _ := NewPedido("cliente-1")
	_, err := p.AdicionarItem(novoProduto(t, "A", 500), 1, "")
	require.NoError(t, err)

	require.NoError(t, p.FinalizarParaPagamento())

	err = p.FinalizarParaPagamento()
	assert.True(t, errors.Is(err, shared.ErrInvalidState))
	assert.Equal(t, StatusAguardandoPagamento, p.Status())
}

func TestPedidoFinalizadoEhImutavel(t *testing.T) {
	p, _ := NewPedido("cliente-1")
	prod := novoProduto(t, "A", 500)
	seq, _ := p.AdicionarItem(prod, 1, "")
	require.NoError(t, p.FinalizarParaPagamento())
	totalAntes := p.ValorTotal()

	_, err := p.AdicionarItem(prod, 1, "")
	assert.True(t, errors.Is(err, shared.ErrInvalidState))

	err = p.RemoverItem(seq)
	assert.True(t, errors.Is(err, shared.ErrInvalidState))

	err = p.AtualizarItem(seq, 2, "")
	assert.True(t, errors.Is(err, shared.ErrInvalidState))

	assert.Len(t, p.Itens(), 1, "conjunto de itens permanece congelado")
	assert.True(t, p.ValorTotal().Equals(totalAntes))
}

func TestItensReturnsACopy(t *testing.T) {
	p, _ := NewPedido("cliente-1")
	_, err := p.AdicionarItem(novoProduto(t, "A", 500), 1, "")
	require.NoError(t, err)

	itens := p.Itens()
	itens[0] = Item{}

	assert.Equal(t, 1, p.Itens()[0].Sequencial())
}

func TestRebuildFromDTO(t *testing.T) {
	original, _ := NewPedido("cliente-1")
	_, err := original.AdicionarItem(novoProduto(t, "A", 500), 2, "capricha")
	require.NoError(t, err)

	itens := original.Itens()
	rebuilt := RebuildFromDTO(ReconstructionDTO{
		ID:          original.ID(),
		DataCriacao: original.DataCriacao(),
		ClienteID:   original.ClienteID(),
		Status:      original.Status(),
		ValorTotal:  original.ValorTotal(),
		Itens: []ItemReconstructionDTO{{
			ID:            itens[0].ID(),
			PedidoID:      original.ID(),
			Sequencial:    itens[0].Sequencial(),
			ProdutoID:     itens[0].ProdutoID(),
			Quantidade:    itens[0].Quantidade(),
			Observacao:    itens[0].Observacao(),
			ValorUnitario: itens[0].ValorUnitario(),
			Valor:         itens[0].Valor(),
		}},
	})

	assert.Equal(t, original.ID(), rebuilt.ID())
	assert.True(t, rebuilt.ValorTotal().Equals(original.ValorTotal()))

	// A rebuilt order keeps deriving sequence numbers from its own items.
	seq, err := rebuilt.AdicionarItem(novoProduto(t, "B", 100), 1, "")
	require.NoError(t, err)
	assert.Equal(t, 2, seq)
}
