package cliente

import "context"

// Repository abstracts customer persistence.
type Repository interface {
	// InserirCliente persists a newly registered customer.
	InserirCliente(ctx context.Context, c *Cliente) error

	// PesquisarPorCpf finds a customer by CPF. Returns (nil, nil) when
	// no customer holds that CPF.
	PesquisarPorCpf(ctx context.Context, cpf string) (*Cliente, error)

	// PesquisarClientePadrao resolves the seeded default customer. The
	// record must always exist; a missing one is an infrastructure fault.
	PesquisarClientePadrao(ctx context.Context) (*Cliente, error)
}
