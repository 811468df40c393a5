package cliente

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfsouzaTI/SnackTech/domain/shared"
)

func TestNewCliente(t *testing.T) {
	c, err := NewCliente("Maria Silva", "maria@exemplo.com", "529.982.247-25")

	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", c.Nome())
	assert.Equal(t, "maria@exemplo.com", c.Email())
	assert.Equal(t, "529.982.247-25", c.Cpf())

	_, err = uuid.Parse(c.ID())
	assert.NoError(t, err, "ID deve ser um UUID válido")
}

func TestNewClienteValidation(t *testing.T) {
	tests := []struct {
		name  string
		nome  string
		email string
		cpf   string
	}{
		{
			name:  "nome vazio",
			nome:  "",
			email: "maria@exemplo.com",
			cpf:   "52998224725",
		},
		{
			name:  "nome acima de 50 caracteres",
			nome:  strings.Repeat("a", 51),
			email: "maria@exemplo.com",
			cpf:   "52998224725",
		},
		{
			name:  "email inválido",
			nome:  "Maria Silva",
			email: "maria.exemplo.com",
			cpf:   "52998224725",
		},
		{
			name:  "cpf inválido",
			nome:  "Maria Silva",
			email: "maria@exemplo.com",
			cpf:   "52998224724",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCliente(tt.nome, tt.email, tt.cpf)

			assert.Nil(t, c)
			require.Error(t, err)
			assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		})
	}
}

func TestCPFClientePadraoIsAValidCpf(t *testing.T) {
	_, err := NewCliente("Cliente Padrão", "cliente.padrao@padrao.com", CPFClientePadrao)
	assert.NoError(t, err)
}

func TestRebuildFromDTO(t *testing.T) {
	dto := ReconstructionDTO{
		ID:    "a2c5d9e1-0000-4000-8000-000000000001",
		Nome:  "Maria Silva",
		Email: "maria@exemplo.com",
		Cpf:   "52998224725",
	}

	c := RebuildFromDTO(dto)

	assert.Equal(t, dto.ID, c.ID())
	assert.Equal(t, dto.Nome, c.Nome())
	assert.Equal(t, dto.Email, c.Email())
	assert.Equal(t, dto.Cpf, c.Cpf())
}
