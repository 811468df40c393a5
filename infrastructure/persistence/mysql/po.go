package mysql

import "time"

// Persistent objects are flat row mappings. Aggregates never carry gorm
// tags; the repositories translate between the two through the
// reconstruction DTOs.

// ClientePO maps the clientes table.
type ClientePO struct {
	ID        string `gorm:"primaryKey;size:36"`
	Nome      string `gorm:"size:50;not null"`
	Email     string `gorm:"size:100;not null"`
	Cpf       string `gorm:"size:14;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ClientePO) TableName() string { return "clientes" }

// ProdutoPO maps the produtos table. Valor is in centavos.
type ProdutoPO struct {
	ID        string `gorm:"primaryKey;size:36"`
	Nome      string `gorm:"size:50;not null"`
	Descricao string `gorm:"size:500"`
	Valor     int64  `gorm:"not null"`
	Moeda     string `gorm:"size:3;not null"`
	Categoria int    `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProdutoPO) TableName() string { return "produtos" }

// PedidoPO maps the pedidos table. Items live in their own table and
// are loaded and saved explicitly, never through gorm associations.
type PedidoPO struct {
	ID          string    `gorm:"primaryKey;size:36"`
	DataCriacao time.Time `gorm:"not null"`
	ClienteID   string    `gorm:"size:36;not null;index"`
	Status      string    `gorm:"size:30;not null;index"`
	ValorTotal  int64     `gorm:"not null"`
	Moeda       string    `gorm:"size:3;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PedidoPO) TableName() string { return "pedidos" }

// PedidoItemPO maps the pedido_itens table. Prices are the snapshot
// captured when the line entered the order.
type PedidoItemPO struct {
	ID            string `gorm:"primaryKey;size:36"`
	PedidoID      string `gorm:"size:36;not null;index"`
	Sequencial    int    `gorm:"not null"`
	ProdutoID     string `gorm:"size:36;not null"`
	Quantidade    int    `gorm:"not null"`
	Observacao    string `gorm:"size:500"`
	ValorUnitario int64  `gorm:"not null"`
	Valor         int64  `gorm:"not null"`
	Moeda         string `gorm:"size:3;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (PedidoItemPO) TableName() string { return "pedido_itens" }
