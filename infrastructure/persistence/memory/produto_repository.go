package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gfsouzaTI/SnackTech/domain/produto"
)

// ProdutoRepository is an in-memory produto.Repository.
type ProdutoRepository struct {
	mu       sync.RWMutex
	produtos map[string]*produto.Produto
}

// NewProdutoRepository creates an empty repository.
func NewProdutoRepository() *ProdutoRepository {
	return &ProdutoRepository{produtos: make(map[string]*produto.Produto)}
}

func (r *ProdutoRepository) Inserir(_ context.Context, p *produto.Produto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.produtos[p.ID()] = cloneProduto(p)
	return nil
}

func (r *ProdutoRepository) Atualizar(_ context.Context, p *produto.Produto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.produtos[p.ID()] = cloneProduto(p)
	return nil
}

func (r *ProdutoRepository) Remover(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.produtos[id]; !ok {
		return false, nil
	}
	delete(r.produtos, id)
	return true, nil
}

func (r *ProdutoRepository) PesquisarPorIdentificacao(_ context.Context, id string) (*produto.Produto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.produtos[id]
	if !ok {
		return nil, nil
	}
	return cloneProduto(p), nil
}

func (r *ProdutoRepository) PesquisarPorCategoria(_ context.Context, categoria produto.Categoria) ([]*produto.Produto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var encontrados []*produto.Produto
	for _, p := range r.produtos {
		if p.Categoria() == categoria {
			encontrados = append(encontrados, cloneProduto(p))
		}
	}
	sort.Slice(encontrados, func(i, j int) bool {
		return encontrados[i].Nome() < encontrados[j].Nome()
	})
	return encontrados, nil
}

func cloneProduto(p *produto.Produto) *produto.Produto {
	return produto.RebuildFromDTO(produto.ReconstructionDTO{
		ID:        p.ID(),
		Nome:      p.Nome(),
		Descricao: p.Descricao(),
		Valor:     p.Valor(),
		Categoria: p.Categoria(),
	})
}

var _ produto.Repository = (*ProdutoRepository)(nil)
