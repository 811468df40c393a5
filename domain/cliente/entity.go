// Package cliente contains the customer aggregate.
//
// A Cliente is created once at registration and immutable afterwards.
// Format validation runs in the constructor, so an invalid Cliente can
// never exist in memory.
package cliente

import (
	"github.com/google/uuid"

	"github.com/gfsouzaTI/SnackTech/domain/guards"
	"github.com/gfsouzaTI/SnackTech/domain/shared"
)

// CPFClientePadrao is the reserved CPF of the seeded default customer,
// used when an order is placed without an identified customer.
const CPFClientePadrao = "00000000191"

// NomeMaxLen bounds the customer name length.
const NomeMaxLen = 50

// Cliente is the customer aggregate root. All fields are private;
// state is exposed through read-only accessors.
type Cliente struct {
	id    string
	nome  string
	email string
	cpf   string
}

// NewCliente creates a Cliente, validating every field. Guard failures
// come back as validation errors, never as a constructed aggregate.
func NewCliente(nome, email, cpf string) (*Cliente, error) {
	if nome == "" {
		return nil, shared.NewValidationError("cliente", "nome", "nome não pode ser vazio")
	}
	if len(nome) > NomeMaxLen {
		return nil, shared.NewValidationError("cliente", "nome", "nome não pode exceder 50 caracteres")
	}
	if err := guards.AgainstInvalidEmail(email, "email"); err != nil {
		return nil, err
	}
	if err := guards.AgainstInvalidCpf(cpf, "cpf"); err != nil {
		return nil, err
	}

	return &Cliente{
		id:    uuid.New().String(),
		nome:  nome,
		email: email,
		cpf:   cpf,
	}, nil
}

func (c *Cliente) ID() string    { return c.id }
func (c *Cliente) Nome() string  { return c.nome }
func (c *Cliente) Email() string { return c.email }
func (c *Cliente) Cpf() string   { return c.cpf }

// ReconstructionDTO rebuilds a Cliente from storage. Repository use only;
// values loaded from the database are assumed to have been validated on
// the way in.
type ReconstructionDTO struct {
	ID    string
	Nome  string
	Email string
	Cpf   string
}

// RebuildFromDTO reconstructs the aggregate without re-running guards.
func RebuildFromDTO(dto ReconstructionDTO) *Cliente {
	return &Cliente{
		id:    dto.ID,
		nome:  dto.Nome,
		email: dto.Email,
		cpf:   dto.Cpf,
	}
}
