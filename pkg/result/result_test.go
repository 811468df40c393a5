package result

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfsouzaTI/SnackTech/domain/shared"
)

func TestOk(t *testing.T) {
	r := Ok(42)

	require.True(t, r.IsSuccess())
	assert.False(t, r.IsHandledFailure())
	assert.False(t, r.IsUnexpectedFailure())
	assert.Equal(t, 42, r.Value())
	assert.Empty(t, r.Message())
	assert.NoError(t, r.Cause())
}

func TestFail(t *testing.T) {
	r := Fail[int]("123 não encontrado.")

	require.True(t, r.IsHandledFailure())
	assert.False(t, r.IsSuccess())
	assert.False(t, r.IsUnexpectedFailure())
	assert.Equal(t, "123 não encontrado.", r.Message())
	assert.NoError(t, r.Cause())
}

func TestUnexpected(t *testing.T) {
	cause := errors.New("connection reset")
	r := Unexpected[int](cause)

	require.True(t, r.IsUnexpectedFailure())
	assert.False(t, r.IsSuccess())
	assert.False(t, r.IsHandledFailure())
	assert.Equal(t, "connection reset", r.Message())
	assert.Same(t, cause, r.Cause())
}

func TestFromErrorClassifiesDomainErrorsAsHandled(t *testing.T) {
	err := shared.NewValidationError("cliente", "cpf", "cpf inválido")

	r := FromError[string](err)

	require.True(t, r.IsHandledFailure())
	assert.Equal(t, "cpf inválido", r.Message())
}

func TestFromErrorClassifiesWrappedDomainErrorsAsHandled(t *testing.T) {
	err := fmt.Errorf("carregando pedido: %w", shared.NewNotFoundError("pedido", "pedido não encontrado"))

	r := FromError[string](err)

	require.True(t, r.IsHandledFailure())
}

func TestFromErrorClassifiesPlainErrorsAsUnexpected(t *testing.T) {
	cause := errors.New("driver: bad connection")

	r := FromError[string](cause)

	require.True(t, r.IsUnexpectedFailure())
	assert.Same(t, cause, r.Cause())
}
