package pedido

import "time"

// IniciarPedido carries the order creation input. An empty CPF selects
// the default customer.
type IniciarPedido struct {
	CPFCliente string `json:"cpf_cliente"`
}

// AtualizacaoPedido carries the desired item set of an editable order.
// Entries with a Sequencial reference existing lines; entries without
// one are new lines. Lines absent from the list are removed.
type AtualizacaoPedido struct {
	Identificacao string                  `json:"identificacao" binding:"required"`
	Itens         []AtualizacaoPedidoItem `json:"itens" binding:"required"`
}

// AtualizacaoPedidoItem is one desired order line.
type AtualizacaoPedidoItem struct {
	Sequencial           *int   `json:"sequencial,omitempty"`
	IdentificacaoProduto string `json:"identificacao_produto"`
	Quantidade           int    `json:"quantidade" binding:"required,min=1"`
	Observacao           string `json:"observacao"`
}

// RetornoPedido is the outward-facing order shape.
type RetornoPedido struct {
	Identificacao        string              `json:"identificacao"`
	DataCriacao          time.Time           `json:"data_criacao"`
	IdentificacaoCliente string              `json:"identificacao_cliente"`
	Status               string              `json:"status"`
	Valor                int64               `json:"valor"`
	Itens                []RetornoPedidoItem `json:"itens"`
}

// RetornoPedidoItem is one outward-facing order line.
type RetornoPedidoItem struct {
	Sequencial           int    `json:"sequencial"`
	IdentificacaoProduto string `json:"identificacao_produto"`
	Quantidade           int    `json:"quantidade"`
	Observacao           string `json:"observacao,omitempty"`
	ValorUnitario        int64  `json:"valor_unitario"`
	Valor                int64  `json:"valor"`
}
