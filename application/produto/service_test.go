package produto

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/gfsouzaTI/SnackTech/domain/produto"
	"github.com/gfsouzaTI/SnackTech/infrastructure/persistence/memory"
)

type testSink struct {
	warns  []string
	errors []string
}

func (s *testSink) Debug(string, string)             {}
func (s *testSink) Warn(_, message string)           { s.warns = append(s.warns, message) }
func (s *testSink) Error(_, message string, _ error) { s.errors = append(s.errors, message) }

func newService() (*Service, *testSink) {
	sink := &testSink{}
	return NewService(memory.NewProdutoRepository(), sink), sink
}

func novoXBurguer() NovoProduto {
	return NovoProduto{
		Nome:      "X-Burguer",
		Descricao: "Hambúrguer com queijo",
		Valor:     1850,
		Categoria: int(domain.CategoriaLanche),
	}
}

func TestCriarNovoProduto(t *testing.T) {
	svc, sink := newService()

	res := svc.CriarNovoProduto(context.Background(), novoXBurguer())

	require.True(t, res.IsSuccess())
	retorno := res.Value()
	assert.NotEmpty(t, retorno.Identificacao)
	assert.Equal(t, "X-Burguer", retorno.Nome)
	assert.Equal(t, int64(1850), retorno.Valor)
	assert.Equal(t, "Lanche", retorno.NomeCategoria)
	assert.Empty(t, sink.warns)
	assert.Empty(t, sink.errors)
}

func TestCriarNovoProdutoInvalido(t *testing.T) {
	casos := []struct {
		nome string
		novo NovoProduto
	}{
		{"valor zero", NovoProduto{Nome: "X", Valor: 0, Categoria: 1}},
		{"categoria desconhecida", NovoProduto{Nome: "X", Valor: 100, Categoria: 9}},
		{"nome vazio", NovoProduto{Nome: "", Valor: 100, Categoria: 1}},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			svc, sink := newService()

			res := svc.CriarNovoProduto(context.Background(), caso.novo)

			require.True(t, res.IsHandledFailure())
			assert.Len(t, sink.warns, 1)
			assert.Empty(t, sink.errors)
		})
	}
}

func TestEditarProduto(t *testing.T) {
	svc, _ := newService()
	criado := svc.CriarNovoProduto(context.Background(), novoXBurguer())
	require.True(t, criado.IsSuccess())
	id := criado.Value().Identificacao

	res := svc.EditarProduto(context.Background(), id, EdicaoProduto{
		Nome:      "X-Salada",
		Descricao: "Com alface e tomate",
		Valor:     2100,
		Categoria: int(domain.CategoriaLanche),
	})

	require.True(t, res.IsSuccess())
	assert.Equal(t, id, res.Value().Identificacao)
	assert.Equal(t, "X-Salada", res.Value().Nome)
	assert.Equal(t, int64(2100), res.Value().Valor)

	relido := svc.BuscarPorIdentificacao(context.Background(), id)
	require.True(t, relido.IsSuccess())
	assert.Equal(t, "X-Salada", relido.Value().Nome)
}

func TestEditarProdutoInexistente(t *testing.T) {
	svc, _ := newService()

	res := svc.EditarProduto(context.Background(), "d7a0da7e-0000-4000-8000-000000000003", EdicaoProduto{
		Nome: "X", Valor: 100, Categoria: 1,
	})

	require.True(t, res.IsHandledFailure())
	assert.Contains(t, res.Message(), "não encontrado")
}

func TestRemoverProduto(t *testing.T) {
	svc, _ := newService()
	id := svc.CriarNovoProduto(context.Background(), novoXBurguer()).Value().Identificacao

	res := svc.RemoverProduto(context.Background(), id)
	require.True(t, res.IsSuccess())
	assert.True(t, res.Value())

	repetido := svc.RemoverProduto(context.Background(), id)
	require.True(t, repetido.IsHandledFailure())
	assert.Contains(t, repetido.Message(), "não encontrado")
}

func TestRemoverProdutoIdentificacaoInvalida(t *testing.T) {
	svc, _ := newService()

	res := svc.RemoverProduto(context.Background(), "abc-123")

	require.True(t, res.IsHandledFailure())
	assert.Equal(t, "abc-123 não é uma identificação válida.", res.Message())
}

func TestBuscarPorCategoria(t *testing.T) {
	svc, _ := newService()
	require.True(t, svc.CriarNovoProduto(context.Background(), novoXBurguer()).IsSuccess())
	require.True(t, svc.CriarNovoProduto(context.Background(), NovoProduto{
		Nome: "Refrigerante", Valor: 700, Categoria: int(domain.CategoriaBebida),
	}).IsSuccess())

	lanches := svc.BuscarPorCategoria(context.Background(), int(domain.CategoriaLanche))
	require.True(t, lanches.IsSuccess())
	require.Len(t, lanches.Value(), 1)
	assert.Equal(t, "X-Burguer", lanches.Value()[0].Nome)

	sobremesas := svc.BuscarPorCategoria(context.Background(), int(domain.CategoriaSobremesa))
	require.True(t, sobremesas.IsSuccess())
	assert.Empty(t, sobremesas.Value())

	invalida := svc.BuscarPorCategoria(context.Background(), 42)
	require.True(t, invalida.IsHandledFailure())
}
