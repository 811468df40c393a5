// Package memory provides in-memory repository implementations. They
// back the test suites and the default runtime when no database is
// configured. Each repository is safe for concurrent use and hands out
// reconstructed copies, never its stored aggregates.
package memory

import (
	"context"
	"sync"

	"github.com/gfsouzaTI/SnackTech/domain/cliente"
)

// ClienteRepository is an in-memory cliente.Repository.
type ClienteRepository struct {
	mu       sync.RWMutex
	porCpf   map[string]*cliente.Cliente
}

// NewClienteRepository creates the repository with the default customer
// already seeded, mirroring the database migration that guarantees the
// record always exists.
func NewClienteRepository() *ClienteRepository {
	r := &ClienteRepository{porCpf: make(map[string]*cliente.Cliente)}

	padrao, err := cliente.NewCliente("Cliente Padrão", "cliente.padrao@padrao.com", cliente.CPFClientePadrao)
	if err == nil {
		r.porCpf[padrao.Cpf()] = padrao
	}
	return r
}

func (r *ClienteRepository) InserirCliente(_ context.Context, c *cliente.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.porCpf[c.Cpf()] = clone(c)
	return nil
}

func (r *ClienteRepository) PesquisarPorCpf(_ context.Context, cpf string) (*cliente.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.porCpf[cpf]
	if !ok {
		return nil, nil
	}
	return clone(c), nil
}

func (r *ClienteRepository) PesquisarClientePadrao(ctx context.Context) (*cliente.Cliente, error) {
	return r.PesquisarPorCpf(ctx, cliente.CPFClientePadrao)
}

func clone(c *cliente.Cliente) *cliente.Cliente {
	return cliente.RebuildFromDTO(cliente.ReconstructionDTO{
		ID:    c.ID(),
		Nome:  c.Nome(),
		Email: c.Email(),
		Cpf:   c.Cpf(),
	})
}

var _ cliente.Repository = (*ClienteRepository)(nil)
