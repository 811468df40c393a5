package produto

// NovoProduto carries the creation input. Valor is in centavos.
type NovoProduto struct {
	Nome      string `json:"nome" binding:"required"`
	Descricao string `json:"descricao"`
	Valor     int64  `json:"valor" binding:"required,min=1"`
	Categoria int    `json:"categoria" binding:"required"`
}

// EdicaoProduto carries the edit input for an existing product.
type EdicaoProduto struct {
	Nome      string `json:"nome" binding:"required"`
	Descricao string `json:"descricao"`
	Valor     int64  `json:"valor" binding:"required,min=1"`
	Categoria int    `json:"categoria" binding:"required"`
}

// RetornoProduto is the outward-facing product shape.
type RetornoProduto struct {
	Identificacao string `json:"identificacao"`
	Nome          string `json:"nome"`
	Descricao     string `json:"descricao"`
	Valor         int64  `json:"valor"`
	Categoria     int    `json:"categoria"`
	NomeCategoria string `json:"nome_categoria"`
}
