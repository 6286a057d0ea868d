package utils

import (
	"errors"
	"testing"
)

func TestValidarEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "vazio significa sem backend", input: "", expected: ""},
		{name: "apenas espaços", input: "   ", expected: ""},
		{name: "https válido", input: "https://backend.exemplo.pt/api/lead", expected: "https://backend.exemplo.pt/api/lead"},
		{name: "http com porta", input: "http://localhost:9000/lead", expected: "http://localhost:9000/lead"},
		{name: "esquema não suportado", input: "ftp://exemplo.pt", wantErr: true},
		{name: "relativo", input: "/api/lead", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidarEndpoint(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrEndpointInvalido) {
					t.Fatalf("esperado ErrEndpointInvalido, obtido %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ValidarEndpoint(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLinkCategoria(t *testing.T) {
	got := LinkCategoria("/simulacao", "moto")
	if got != "/simulacao?cat=moto#simulacao" {
		t.Errorf("LinkCategoria = %q", got)
	}
}
