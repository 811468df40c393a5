// Package pedido orchestrates the order use cases. Orders are always
// mutated through the aggregate's own methods; this service only
// sequences loads, aggregate calls and persistence, and translates the
// outcome into a Result.
package pedido

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	clientedomain "github.com/gfsouzaTI/SnackTech/domain/cliente"
	"github.com/gfsouzaTI/SnackTech/domain/guards"
	domain "github.com/gfsouzaTI/SnackTech/domain/pedido"
	produtodomain "github.com/gfsouzaTI/SnackTech/domain/produto"
	"github.com/gfsouzaTI/SnackTech/pkg/execution"
	"github.com/gfsouzaTI/SnackTech/pkg/result"
)

// Service is the order application service.
type Service struct {
	pedidos  domain.Repository
	clientes clientedomain.Repository
	produtos produtodomain.Repository
	sink     execution.Sink
}

// NewService creates the order service.
func NewService(
	pedidos domain.Repository,
	clientes clientedomain.Repository,
	produtos produtodomain.Repository,
	sink execution.Sink,
) *Service {
	return &Service{pedidos: pedidos, clientes: clientes, produtos: produtos, sink: sink}
}

// IniciarPedido creates an empty editable order for the customer with
// the given CPF, or for the default customer when no CPF is supplied.
// Returns the new order's identity.
func (s *Service) IniciarPedido(ctx context.Context, cpfCliente string) result.Result[string] {
	return execution.Run(s.sink, "PedidoService.IniciarPedido", func() result.Result[string] {
		clienteID, res := s.resolverCliente(ctx, cpfCliente)
		if clienteID == "" {
			return res
		}

		novo, err := domain.NewPedido(clienteID)
		if err != nil {
			return result.FromError[string](err)
		}

		if err := s.pedidos.Inserir(ctx, novo); err != nil {
			return result.FromError[string](err)
		}

		return result.Ok(novo.ID())
	})
}

// AtualizarPedido reconciles an editable order's item set with the
// submitted one: lines missing from the request are removed, lines with
// a sequence number are updated, lines without one are added with a
// fresh price snapshot.
func (s *Service) AtualizarPedido(ctx context.Context, atualizacao AtualizacaoPedido) result.Result[RetornoPedido] {
	return execution.Run(s.sink, "PedidoService.AtualizarPedido", func() result.Result[RetornoPedido] {
		ped, res := s.carregarPedido(ctx, atualizacao.Identificacao)
		if ped == nil {
			return res
		}

		desejados := make(map[int]bool)
		for _, item := range atualizacao.Itens {
			if item.Sequencial != nil {
				desejados[*item.Sequencial] = true
			}
		}

		for _, existente := range ped.Itens() {
			if !desejados[existente.Sequencial()] {
				if err := ped.RemoverItem(existente.Sequencial()); err != nil {
					return result.FromError[RetornoPedido](err)
				}
			}
		}

		for _, item := range atualizacao.Itens {
			if item.Sequencial != nil {
				if err := ped.AtualizarItem(*item.Sequencial, item.Quantidade, item.Observacao); err != nil {
					return result.FromError[RetornoPedido](err)
				}
				continue
			}

			prod, err := s.produtos.PesquisarPorIdentificacao(ctx, item.IdentificacaoProduto)
			if err != nil {
				return result.FromError[RetornoPedido](err)
			}
			if prod == nil {
				return result.Fail[RetornoPedido](fmt.Sprintf("produto %s não encontrado.", item.IdentificacaoProduto))
			}

			if _, err := ped.AdicionarItem(prod, item.Quantidade, item.Observacao); err != nil {
				return result.FromError[RetornoPedido](err)
			}
		}

		if err := s.pedidos.Atualizar(ctx, ped); err != nil {
			return result.FromError[RetornoPedido](err)
		}

		return result.Ok(toRetornoPedido(ped))
	})
}

// FinalizarPedidoParaPagamento freezes the order for payment.
func (s *Service) FinalizarPedidoParaPagamento(ctx context.Context, identificacao string) result.Result[RetornoPedido] {
	return execution.Run(s.sink, "PedidoService.FinalizarPedidoParaPagamento", func() result.Result[RetornoPedido] {
		ped, res := s.carregarPedido(ctx, identificacao)
		if ped == nil {
			return res
		}

		if err := ped.FinalizarParaPagamento(); err != nil {
			return result.FromError[RetornoPedido](err)
		}

		if err := s.pedidos.Atualizar(ctx, ped); err != nil {
			return result.FromError[RetornoPedido](err)
		}

		return result.Ok(toRetornoPedido(ped))
	})
}

// ListarPedidosParaPagamento lists the orders awaiting payment.
func (s *Service) ListarPedidosParaPagamento(ctx context.Context) result.Result[[]RetornoPedido] {
	return execution.Run(s.sink, "PedidoService.ListarPedidosParaPagamento", func() result.Result[[]RetornoPedido] {
		pedidos, err := s.pedidos.PesquisarPedidosParaPagamento(ctx)
		if err != nil {
			return result.FromError[[]RetornoPedido](err)
		}
		return result.Ok(toRetornoPedidos(pedidos))
	})
}

// BuscarPorIdenticacao finds an order by id.
func (s *Service) BuscarPorIdenticacao(ctx context.Context, identificacao string) result.Result[RetornoPedido] {
	return execution.Run(s.sink, "PedidoService.BuscarPorIdenticacao", func() result.Result[RetornoPedido] {
		ped, res := s.carregarPedido(ctx, identificacao)
		if ped == nil {
			return res
		}
		return result.Ok(toRetornoPedido(ped))
	})
}

// BuscarUltimoPedidoCliente finds the most recent order of the customer
// with the given CPF.
func (s *Service) BuscarUltimoPedidoCliente(ctx context.Context, cpfCliente string) result.Result[RetornoPedido] {
	operation := fmt.Sprintf("PedidoService.BuscarUltimoPedidoCliente - %s", cpfCliente)
	return execution.Run(s.sink, operation, func() result.Result[RetornoPedido] {
		if err := guards.AgainstInvalidCpf(cpfCliente, "cpfCliente"); err != nil {
			return result.FromError[RetornoPedido](err)
		}

		cli, err := s.clientes.PesquisarPorCpf(ctx, cpfCliente)
		if err != nil {
			return result.FromError[RetornoPedido](err)
		}
		if cli == nil {
			return result.Fail[RetornoPedido](fmt.Sprintf("%s não encontrado.", cpfCliente))
		}

		ultimo, err := s.pedidos.PesquisarUltimoPedidoCliente(ctx, cli.ID())
		if err != nil {
			return result.FromError[RetornoPedido](err)
		}
		if ultimo == nil {
			return result.Fail[RetornoPedido](fmt.Sprintf("cliente %s não possui pedidos.", cpfCliente))
		}

		return result.Ok(toRetornoPedido(ultimo))
	})
}

// resolverCliente maps a CPF (or its absence) to a customer identity.
// Returns "" alongside the failure Result when resolution fails.
func (s *Service) resolverCliente(ctx context.Context, cpfCliente string) (string, result.Result[string]) {
	if cpfCliente == "" {
		padrao, err := s.clientes.PesquisarClientePadrao(ctx)
		if err != nil {
			return "", result.FromError[string](err)
		}
		if padrao == nil {
			return "", result.Unexpected[string](fmt.Errorf("cliente padrão não está cadastrado na base"))
		}
		return padrao.ID(), result.Result[string]{}
	}

	if err := guards.AgainstInvalidCpf(cpfCliente, "cpfCliente"); err != nil {
		return "", result.FromError[string](err)
	}

	cli, err := s.clientes.PesquisarPorCpf(ctx, cpfCliente)
	if err != nil {
		return "", result.FromError[string](err)
	}
	if cli == nil {
		return "", result.Fail[string](fmt.Sprintf("%s não encontrado.", cpfCliente))
	}
	return cli.ID(), result.Result[string]{}
}

// carregarPedido resolves an order or the failure Result explaining why
// it could not be resolved.
func (s *Service) carregarPedido(ctx context.Context, identificacao string) (*domain.Pedido, result.Result[RetornoPedido]) {
	if _, err := uuid.Parse(identificacao); err != nil {
		return nil, result.Fail[RetornoPedido](fmt.Sprintf("%s não é uma identificação válida.", identificacao))
	}

	ped, err := s.pedidos.PesquisarPorIdentificacao(ctx, identificacao)
	if err != nil {
		return nil, result.FromError[RetornoPedido](err)
	}
	if ped == nil {
		return nil, result.Fail[RetornoPedido](fmt.Sprintf("pedido %s não encontrado.", identificacao))
	}
	return ped, result.Result[RetornoPedido]{}
}
