// Package produto contains the product aggregate and its category enum.
package produto

import (
	"github.com/google/uuid"

	"github.com/gfsouzaTI/SnackTech/domain/shared"
)

const (
	nomeMaxLen      = 50
	descricaoMaxLen = 500
)

// Categoria enumerates the catalog sections of the snack counter.
type Categoria int

const (
	CategoriaLanche         Categoria = 1
	CategoriaAcompanhamento Categoria = 2
	CategoriaBebida         Categoria = 3
	CategoriaSobremesa      Categoria = 4
)

// NewCategoria validates a raw category id.
func NewCategoria(id int) (Categoria, error) {
	c := Categoria(id)
	switch c {
	case CategoriaLanche, CategoriaAcompanhamento, CategoriaBebida, CategoriaSobremesa:
		return c, nil
	}
	return 0, shared.NewValidationError("produto", "categoria", "categoria de produto inválida")
}

// String renders the category name.
func (c Categoria) String() string {
	switch c {
	case CategoriaLanche:
		return "Lanche"
	case CategoriaAcompanhamento:
		return "Acompanhamento"
	case CategoriaBebida:
		return "Bebida"
	case CategoriaSobremesa:
		return "Sobremesa"
	default:
		return "Desconhecida"
	}
}

// Produto is an independently managed catalog entry. Orders reference
// it by id and snapshot its price; they never embed it.
type Produto struct {
	id        string
	nome      string
	descricao string
	valor     shared.Money
	categoria Categoria
}

// NewProduto creates a Produto after validating every field.
func NewProduto(nome, descricao string, valor shared.Money, categoria Categoria) (*Produto, error) {
	if err := validate(nome, descricao, valor, categoria); err != nil {
		return nil, err
	}

	return &Produto{
		id:        uuid.New().String(),
		nome:      nome,
		descricao: descricao,
		valor:     valor,
		categoria: categoria,
	}, nil
}

// Atualizar replaces the editable fields, running the same validation
// as construction. Price changes do not touch previously placed orders,
// which captured their own snapshot.
func (p *Produto) Atualizar(nome, descricao string, valor shared.Money, categoria Categoria) error {
	if err := validate(nome, descricao, valor, categoria); err != nil {
		return err
	}

	p.nome = nome
	p.descricao = descricao
	p.valor = valor
	p.categoria = categoria
	return nil
}

func validate(nome, descricao string, valor shared.Money, categoria Categoria) error {
	if nome == "" {
		return shared.NewValidationError("produto", "nome", "nome não pode ser vazio")
	}
	if len(nome) > nomeMaxLen {
		return shared.NewValidationError("produto", "nome", "nome não pode exceder 50 caracteres")
	}
	if len(descricao) > descricaoMaxLen {
		return shared.NewValidationError("produto", "descricao", "descrição não pode exceder 500 caracteres")
	}
	if !valor.IsPositive() {
		return shared.NewValidationError("produto", "valor", "valor deve ser positivo")
	}
	if _, err := NewCategoria(int(categoria)); err != nil {
		return err
	}
	return nil
}

func (p *Produto) ID() string           { return p.id }
func (p *Produto) Nome() string         { return p.nome }
func (p *Produto) Descricao() string    { return p.descricao }
func (p *Produto) Valor() shared.Money  { return p.valor }
func (p *Produto) Categoria() Categoria { return p.categoria }

// ReconstructionDTO rebuilds a Produto from storage. Repository use only.
type ReconstructionDTO struct {
	ID        string
	Nome      string
	Descricao string
	Valor     shared.Money
	Categoria Categoria
}

// RebuildFromDTO reconstructs the aggregate without re-running validation.
func RebuildFromDTO(dto ReconstructionDTO) *Produto {
	return &Produto{
		id:        dto.ID,
		nome:      dto.Nome,
		descricao: dto.Descricao,
		valor:     dto.Valor,
		categoria: dto.Categoria,
	}
}
