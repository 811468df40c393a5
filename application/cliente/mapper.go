package cliente

import domain "github.com/gfsouzaTI/SnackTech/domain/cliente"

func toRetornoCliente(c *domain.Cliente) RetornoCliente {
	return RetornoCliente{
		Identificacao: c.ID(),
		Nome:          c.Nome(),
		Email:         c.Email(),
		CPF:           c.Cpf(),
	}
}
