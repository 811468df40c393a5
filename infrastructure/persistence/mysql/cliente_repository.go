package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gfsouzaTI/SnackTech/domain/cliente"
)

// ClienteRepository persists customers in MySQL.
type ClienteRepository struct {
	db *gorm.DB
}

var _ cliente.Repository = (*ClienteRepository)(nil)

// NewClienteRepository creates the repository.
func NewClienteRepository(db *gorm.DB) *ClienteRepository {
	return &ClienteRepository{db: db}
}

// InserirCliente persists a newly registered customer.
func (r *ClienteRepository) InserirCliente(ctx context.Context, c *cliente.Cliente) error {
	po := ClientePO{
		ID:    c.ID(),
		Nome:  c.Nome(),
		Email: c.Email(),
		Cpf:   c.Cpf(),
	}
	return r.db.WithContext(ctx).Create(&po).Error
}

// PesquisarPorCpf finds a customer by CPF, (nil, nil) when absent.
func (r *ClienteRepository) PesquisarPorCpf(ctx context.Context, cpf string) (*cliente.Cliente, error) {
	var po ClientePO
	err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&po).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toCliente(po), nil
}

// PesquisarClientePadrao finds the seeded default customer.
func (r *ClienteRepository) PesquisarClientePadrao(ctx context.Context) (*cliente.Cliente, error) {
	return r.PesquisarPorCpf(ctx, cliente.CPFClientePadrao)
}

func toCliente(po ClientePO) *cliente.Cliente {
	return cliente.RebuildFromDTO(cliente.ReconstructionDTO{
		ID:    po.ID,
		Nome:  po.Nome,
		Email: po.Email,
		Cpf:   po.Cpf,
	})
}
