package execution

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfsouzaTI/SnackTech/pkg/result"
)

type sinkEntry struct {
	severity  string
	operation string
	message   string
	cause     error
}

// recordingSink captures every diagnostic emitted through it.
type recordingSink struct {
	entries []sinkEntry
}

func (s *recordingSink) Debug(operation, message string) {
	s.entries = append(s.entries, sinkEntry{"debug", operation, message, nil})
}

func (s *recordingSink) Warn(operation, message string) {
	s.entries = append(s.entries, sinkEntry{"warn", operation, message, nil})
}

func (s *recordingSink) Error(operation, message string, cause error) {
	s.entries = append(s.entries, sinkEntry{"error", operation, message, cause})
}

func (s *recordingSink) withSeverity(severity string) []sinkEntry {
	var out []sinkEntry
	for _, e := range s.entries {
		if e.severity == severity {
			out = append(out, e)
		}
	}
	return out
}

func TestRunPassesSuccessThrough(t *testing.T) {
	sink := &recordingSink{}

	res := Run(sink, "ClienteService.Cadastrar", func() result.Result[int] {
		return result.Ok(7)
	})

	require.True(t, res.IsSuccess())
	assert.Equal(t, 7, res.Value())
	require.Len(t, sink.entries, 1)
	assert.Equal(t, "debug", sink.entries[0].severity)
	assert.Equal(t, "ClienteService.Cadastrar", sink.entries[0].operation)
}

func TestRunLogsHandledFailureAsWarning(t *testing.T) {
	sink := &recordingSink{}

	res := Run(sink, "ClienteService.IdentificarPorCpf", func() result.Result[int] {
		return result.Fail[int]("52998224725 não encontrado.")
	})

	require.True(t, res.IsHandledFailure())
	require.Len(t, sink.entries, 1)
	assert.Equal(t, "warn", sink.entries[0].severity)
	assert.Equal(t, "52998224725 não encontrado.", sink.entries[0].message)
	assert.Empty(t, sink.withSeverity("error"))
}

func TestRunLogsUnexpectedFailureExactlyOnce(t *testing.T) {
	sink := &recordingSink{}
	cause := errors.New("driver: bad connection")

	res := Run(sink, "PedidoService.IniciarPedido", func() result.Result[int] {
		return result.Unexpected[int](cause)
	})

	require.True(t, res.IsUnexpectedFailure())
	assert.Same(t, cause, res.Cause())

	errorEntries := sink.withSeverity("error")
	require.Len(t, errorEntries, 1)
	assert.Equal(t, "PedidoService.IniciarPedido", errorEntries[0].operation)
	assert.Same(t, cause, errorEntries[0].cause)
}

func TestRunRecoversPanicIntoUnexpectedFailure(t *testing.T) {
	sink := &recordingSink{}
	boom := errors.New("índice fora do intervalo")

	res := Run(sink, "ProdutoService.EditarProduto", func() result.Result[string] {
		panic(boom)
	})

	require.True(t, res.IsUnexpectedFailure())
	assert.Same(t, boom, res.Cause())
	assert.Equal(t, "índice fora do intervalo", res.Message())

	errorEntries := sink.withSeverity("error")
	require.Len(t, errorEntries, 1)
}

func TestRunRecoversNonErrorPanic(t *testing.T) {
	sink := &recordingSink{}

	res := Run(sink, "ProdutoService.RemoverProduto", func() result.Result[string] {
		panic("algo muito errado")
	})

	require.True(t, res.IsUnexpectedFailure())
	assert.Equal(t, "panic: algo muito errado", res.Message())
}
