package cliente

// CadastroCliente carries the registration input.
type CadastroCliente struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required"`
	CPF   string `json:"cpf" binding:"required"`
}

// RetornoCliente is the outward-facing customer shape. No aggregate
// type leaks past the service boundary.
type RetornoCliente struct {
	Identificacao string `json:"identificacao"`
	Nome          string `json:"nome"`
	Email         string `json:"email"`
	CPF           string `json:"cpf"`
}
