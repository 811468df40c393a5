package guards

import (
	"errors"
	"testing"

	"github.com/gfsouzaTI/SnackTech/domain/shared"
)

func TestAgainstInvalidCpf(t *testing.T) {
	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{
			name:  "valid unformatted",
			cpf:   "52998224725",
			valid: true,
		},
		{
			name:  "valid formatted",
			cpf:   "529.982.247-25",
			valid: true,
		},
		{
			name:  "valid with leading zeros",
			cpf:   "00000000191",
			valid: true,
		},
		{
			name:  "wrong second check digit",
			cpf:   "52998224724",
			valid: false,
		},
		{
			name:  "wrong first check digit",
			cpf:   "52998224735",
			valid: false,
		},
		{
			name:  "repeated digits pass checksum but are rejected",
			cpf:   "111.111.111-11",
			valid: false,
		},
		{
			name:  "too short",
			cpf:   "5299822472",
			valid: false,
		},
		{
			name:  "too long",
			cpf:   "529982247251",
			valid: false,
		},
		{
			name:  "contains letters",
			cpf:   "5299822472a",
			valid: false,
		},
		{
			name:  "empty",
			cpf:   "",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AgainstInvalidCpf(tt.cpf, "cpf")
			if tt.valid && err != nil {
				t.Fatalf("AgainstInvalidCpf(%q) = %v, want nil", tt.cpf, err)
			}
			if !tt.valid {
				if err == nil {
					t.Fatalf("AgainstInvalidCpf(%q) = nil, want validation error", tt.cpf)
				}
				if !errors.Is(err, shared.ErrInvalidInput) {
					t.Fatalf("AgainstInvalidCpf(%q) = %v, want ErrInvalidInput", tt.cpf, err)
				}
			}
		})
	}
}

func TestAgainstInvalidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{
			name:  "valid",
			email: "cliente@exemplo.com.br",
			valid: true,
		},
		{
			name:  "valid with plus sign",
			email: "cliente+pedidos@exemplo.com",
			valid: true,
		},
		{
			name:  "uppercase is normalized",
			email: "Cliente@Exemplo.COM",
			valid: true,
		},
		{
			name:  "missing at sign",
			email: "cliente.exemplo.com",
			valid: false,
		},
		{
			name:  "missing domain separator",
			email: "cliente@exemplo",
			valid: false,
		},
		{
			name:  "empty",
			email: "",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AgainstInvalidEmail(tt.email, "email")
			if tt.valid && err != nil {
				t.Fatalf("AgainstInvalidEmail(%q) = %v, want nil", tt.email, err)
			}
			if !tt.valid && !errors.Is(err, shared.ErrInvalidInput) {
				t.Fatalf("AgainstInvalidEmail(%q) = %v, want ErrInvalidInput", tt.email, err)
			}
		})
	}
}
