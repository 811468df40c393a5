package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gfsouzaTI/SnackTech/domain/produto"
	"github.com/gfsouzaTI/SnackTech/domain/shared"
)

// ProdutoRepository persists catalog entries in MySQL.
type ProdutoRepository struct {
	db *gorm.DB
}

var _ produto.Repository = (*ProdutoRepository)(nil)

// NewProdutoRepository creates the repository.
func NewProdutoRepository(db *gorm.DB) *ProdutoRepository {
	return &ProdutoRepository{db: db}
}

// Inserir persists a new product.
func (r *ProdutoRepository) Inserir(ctx context.Context, p *produto.Produto) error {
	po := toProdutoPO(p)
	return r.db.WithContext(ctx).Create(&po).Error
}

// Atualizar persists the current state of an existing product.
func (r *ProdutoRepository) Atualizar(ctx context.Context, p *produto.Produto) error {
	po := toProdutoPO(p)
	return r.db.WithContext(ctx).Model(&ProdutoPO{ID: po.ID}).
		Select("nome", "descricao", "valor", "moeda", "categoria").
		Updates(&po).Error
}

// Remover deletes a product, reporting whether a row existed.
func (r *ProdutoRepository) Remover(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&ProdutoPO{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// PesquisarPorIdentificacao finds a product by id, (nil, nil) when
// absent.
func (r *ProdutoRepository) PesquisarPorIdentificacao(ctx context.Context, id string) (*produto.Produto, error) {
	var po ProdutoPO
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&po).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toProduto(po), nil
}

// PesquisarPorCategoria lists the products of a category by name.
func (r *ProdutoRepository) PesquisarPorCategoria(ctx context.Context, categoria produto.Categoria) ([]*produto.Produto, error) {
	var pos []ProdutoPO
	err := r.db.WithContext(ctx).
		Where("categoria = ?", int(categoria)).
		Order("nome asc").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}

	produtos := make([]*produto.Produto, len(pos))
	for i, po := range pos {
		produtos[i] = toProduto(po)
	}
	return produtos, nil
}

func toProdutoPO(p *produto.Produto) ProdutoPO {
	return ProdutoPO{
		ID:        p.ID(),
		Nome:      p.Nome(),
		Descricao: p.Descricao(),
		Valor:     p.Valor().Amount(),
		Moeda:     p.Valor().Currency(),
		Categoria: int(p.Categoria()),
	}
}

func toProduto(po ProdutoPO) *produto.Produto {
	return produto.RebuildFromDTO(produto.ReconstructionDTO{
		ID:        po.ID,
		Nome:      po.Nome,
		Descricao: po.Descricao,
		Valor:     shared.NewMoney(po.Valor, po.Moeda),
		Categoria: produto.Categoria(po.Categoria),
	})
}
