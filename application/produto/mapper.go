package produto

import domain "github.com/gfsouzaTI/SnackTech/domain/produto"

func toRetornoProduto(p *domain.Produto) RetornoProduto {
	return RetornoProduto{
		Identificacao: p.ID(),
		Nome:          p.Nome(),
		Descricao:     p.Descricao(),
		Valor:         p.Valor().Amount(),
		Categoria:     int(p.Categoria()),
		NomeCategoria: p.Categoria().String(),
	}
}

func toRetornoProdutos(produtos []*domain.Produto) []RetornoProduto {
	retornos := make([]RetornoProduto, len(produtos))
	for i, p := range produtos {
		retornos[i] = toRetornoProduto(p)
	}
	return retornos
}
