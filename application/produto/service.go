// Package produto orchestrates the catalog use cases.
package produto

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/gfsouzaTI/SnackTech/domain/produto"
	"github.com/gfsouzaTI/SnackTech/domain/shared"
	"github.com/gfsouzaTI/SnackTech/pkg/execution"
	"github.com/gfsouzaTI/SnackTech/pkg/result"
)

// Service is the product application service.
type Service struct {
	produtos domain.Repository
	sink     execution.Sink
}

// NewService creates the product service.
func NewService(produtos domain.Repository, sink execution.Sink) *Service {
	return &Service{produtos: produtos, sink: sink}
}

// CriarNovoProduto adds a product to the catalog.
func (s *Service) CriarNovoProduto(ctx context.Context, novo NovoProduto) result.Result[RetornoProduto] {
	return execution.Run(s.sink, "ProdutoService.CriarNovoProduto", func() result.Result[RetornoProduto] {
		categoria, err := domain.NewCategoria(novo.Categoria)
		if err != nil {
			return result.FromError[RetornoProduto](err)
		}

		prod, err := domain.NewProduto(novo.Nome, novo.Descricao, shared.NewReais(novo.Valor), categoria)
		if err != nil {
			return result.FromError[RetornoProduto](err)
		}

		if err := s.produtos.Inserir(ctx, prod); err != nil {
			return result.FromError[RetornoProduto](err)
		}

		return result.Ok(toRetornoProduto(prod))
	})
}

// EditarProduto updates an existing product. Existing orders keep the
// price they captured.
func (s *Service) EditarProduto(ctx context.Context, identificacao string, edicao EdicaoProduto) result.Result[RetornoProduto] {
	return execution.Run(s.sink, "ProdutoService.EditarProduto", func() result.Result[RetornoProduto] {
		prod, res := s.carregarProduto(ctx, identificacao)
		if prod == nil {
			return res
		}

		categoria, err := domain.NewCategoria(edicao.Categoria)
		if err != nil {
			return result.FromError[RetornoProduto](err)
		}

		if err := prod.Atualizar(edicao.Nome, edicao.Descricao, shared.NewReais(edicao.Valor), categoria); err != nil {
			return result.FromError[RetornoProduto](err)
		}

		if err := s.produtos.Atualizar(ctx, prod); err != nil {
			return result.FromError[RetornoProduto](err)
		}

		return result.Ok(toRetornoProduto(prod))
	})
}

// RemoverProduto removes a product from the catalog.
func (s *Service) RemoverProduto(ctx context.Context, identificacao string) result.Result[bool] {
	return execution.Run(s.sink, "ProdutoService.RemoverProduto", func() result.Result[bool] {
		if _, err := uuid.Parse(identificacao); err != nil {
			return result.Fail[bool](fmt.Sprintf("%s não é uma identificação válida.", identificacao))
		}

		removido, err := s.produtos.Remover(ctx, identificacao)
		if err != nil {
			return result.FromError[bool](err)
		}
		if !removido {
			return result.Fail[bool](fmt.Sprintf("produto %s não encontrado.", identificacao))
		}

		return result.Ok(true)
	})
}

// BuscarPorIdentificacao finds a product by id.
func (s *Service) BuscarPorIdentificacao(ctx context.Context, identificacao string) result.Result[RetornoProduto] {
	return execution.Run(s.sink, "ProdutoService.BuscarPorIdentificacao", func() result.Result[RetornoProduto] {
		prod, res := s.carregarProduto(ctx, identificacao)
		if prod == nil {
			return res
		}
		return result.Ok(toRetornoProduto(prod))
	})
}

// BuscarPorCategoria lists the products of a category.
func (s *Service) BuscarPorCategoria(ctx context.Context, categoriaID int) result.Result[[]RetornoProduto] {
	operation := fmt.Sprintf("ProdutoService.BuscarPorCategoria - %d", categoriaID)
	return execution.Run(s.sink, operation, func() result.Result[[]RetornoProduto] {
		categoria, err := domain.NewCategoria(categoriaID)
		if err != nil {
			return result.FromError[[]RetornoProduto](err)
		}

		produtos, err := s.produtos.PesquisarPorCategoria(ctx, categoria)
		if err != nil {
			return result.FromError[[]RetornoProduto](err)
		}

		return result.Ok(toRetornoProdutos(produtos))
	})
}

// carregarProduto resolves a product or the failure Result explaining
// why it could not be resolved.
func (s *Service) carregarProduto(ctx context.Context, identificacao string) (*domain.Produto, result.Result[RetornoProduto]) {
	if _, err := uuid.Parse(identificacao); err != nil {
		return nil, result.Fail[RetornoProduto](fmt.Sprintf("%s não é uma identificação válida.", identificacao))
	}

	prod, err := s.produtos.PesquisarPorIdentificacao(ctx, identificacao)
	if err != nil {
		return nil, result.FromError[RetornoProduto](err)
	}
	if prod == nil {
		return nil, result.Fail[RetornoProduto](fmt.Sprintf("produto %s não encontrado.", identificacao))
	}
	return prod, result.Result[RetornoProduto]{}
}
