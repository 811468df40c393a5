package pedido

import domain "github.com/gfsouzaTI/SnackTech/domain/pedido"

func toRetornoPedido(p *domain.Pedido) RetornoPedido {
	itens := p.Itens()
	retornoItens := make([]RetornoPedidoItem, len(itens))
	for i, item := range itens {
		retornoItens[i] = RetornoPedidoItem{
			Sequencial:           item.Sequencial(),
			IdentificacaoProduto: item.ProdutoID(),
			Quantidade:           item.Quantidade(),
			Observacao:           item.Observacao(),
			ValorUnitario:        item.ValorUnitario().Amount(),
			Valor:                item.Valor().Amount(),
		}
	}

	return RetornoPedido{
		Identificacao:        p.ID(),
		DataCriacao:          p.DataCriacao(),
		IdentificacaoCliente: p.ClienteID(),
		Status:               string(p.Status()),
		Valor:                p.ValorTotal().Amount(),
		Itens:                retornoItens,
	}
}

func toRetornoPedidos(pedidos []*domain.Pedido) []RetornoPedido {
	retornos := make([]RetornoPedido, len(pedidos))
	for i, p := range pedidos {
		retornos[i] = toRetornoPedido(p)
	}
	return retornos
}
