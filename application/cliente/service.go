// Package cliente orchestrates the customer use cases. Every public
// operation validates input through the guards, drives the aggregate,
// persists through the repository port and returns a Result, all inside
// the execution wrapper under a stable operation name.
package cliente

import (
	"context"
	"fmt"

	domain "github.com/gfsouzaTI/SnackTech/domain/cliente"
	"github.com/gfsouzaTI/SnackTech/domain/guards"
	"github.com/gfsouzaTI/SnackTech/pkg/execution"
	"github.com/gfsouzaTI/SnackTech/pkg/result"
)

// Service is the customer application service.
type Service struct {
	clientes domain.Repository
	sink     execution.Sink
}

// NewService creates the customer service.
func NewService(clientes domain.Repository, sink execution.Sink) *Service {
	return &Service{clientes: clientes, sink: sink}
}

// Cadastrar registers a new customer.
func (s *Service) Cadastrar(ctx context.Context, cadastro CadastroCliente) result.Result[RetornoCliente] {
	return execution.Run(s.sink, "ClienteService.Cadastrar", func() result.Result[RetornoCliente] {
		novo, err := domain.NewCliente(cadastro.Nome, cadastro.Email, cadastro.CPF)
		if err != nil {
			return result.FromError[RetornoCliente](err)
		}

		if err := s.clientes.InserirCliente(ctx, novo); err != nil {
			return result.FromError[RetornoCliente](err)
		}

		return result.Ok(toRetornoCliente(novo))
	})
}

// IdentificarPorCpf looks a customer up by CPF. An unregistered but
// well-formed CPF is a handled failure, not a nil value.
func (s *Service) IdentificarPorCpf(ctx context.Context, cpf string) result.Result[RetornoCliente] {
	operation := fmt.Sprintf("ClienteService.IdentificarPorCpf - %s", cpf)
	return execution.Run(s.sink, operation, func() result.Result[RetornoCliente] {
		if err := guards.AgainstInvalidCpf(cpf, "cpf"); err != nil {
			return result.FromError[RetornoCliente](err)
		}

		encontrado, err := s.clientes.PesquisarPorCpf(ctx, cpf)
		if err != nil {
			return result.FromError[RetornoCliente](err)
		}
		if encontrado == nil {
			return result.Fail[RetornoCliente](fmt.Sprintf("%s não encontrado.", cpf))
		}

		return result.Ok(toRetornoCliente(encontrado))
	})
}

// SelecionarClientePadrao resolves the identity of the seeded default
// customer, used for orders placed without identification.
func (s *Service) SelecionarClientePadrao(ctx context.Context) result.Result[string] {
	return execution.Run(s.sink, "ClienteService.SelecionarClientePadrao", func() result.Result[string] {
		padrao, err := s.clientes.PesquisarClientePadrao(ctx)
		if err != nil {
			return result.FromError[string](err)
		}
		if padrao == nil {
			return result.Unexpected[string](fmt.Errorf("cliente padrão não está cadastrado na base"))
		}

		return result.Ok(padrao.ID())
	})
}
