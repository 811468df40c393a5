package produto

import "context"

// Repository abstracts product persistence.
type Repository interface {
	// Inserir persists a new product.
	Inserir(ctx context.Context, p *Produto) error

	// Atualizar persists changes to an existing product.
	Atualizar(ctx context.Context, p *Produto) error

	// Remover deletes a product. Returns (false, nil) when no product
	// has that id.
	Remover(ctx context.Context, id string) (bool, error)

	// PesquisarPorIdentificacao finds a product by id. Returns
	// (nil, nil) when absent.
	PesquisarPorIdentificacao(ctx context.Context, id string) (*Produto, error)

	// PesquisarPorCategoria lists the products of a category.
	PesquisarPorCategoria(ctx context.Context, categoria Categoria) ([]*Produto, error)
}
