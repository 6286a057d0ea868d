package validation

import (
	"testing"

	"github.com/seguros-online/app-simulacao/internal/models"
	"github.com/seguros-online/app-simulacao/internal/quote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pedidoTeste struct {
	Nome      string `json:"nome" validate:"required,min_palavras=2"`
	NIF       string `json:"nif" validate:"omitempty,nif"`
	Telemovel string `json:"telemovel" validate:"required,telemovel_pt"`
	Postal    string `json:"codigo_postal" validate:"required,codigo_postal"`
	Matricula string `json:"matricula" validate:"omitempty,matricula_pt"`
	Categoria string `json:"categoria" validate:"required,categoria"`
}

func TestCustomTags(t *testing.T) {
	v := New()

	ok := pedidoTeste{
		Nome:      "Maria Silva",
		NIF:       "123456789",
		Telemovel: "912 345 678",
		Postal:    "1234-567",
		Matricula: "AA-12-BB",
		Categoria: "Saúde",
	}
	require.NoError(t, v.Struct(ok))

	bad := pedidoTeste{
		Nome:      "Maria",
		NIF:       "123456780",
		Telemovel: "812345678",
		Postal:    "1234567",
		Matricula: "ABCDEF",
		Categoria: "barcos",
	}
	errs := v.Validate(bad)

	assert.Equal(t, map[string]string{
		"nome":          quote.MsgNome,
		"nif":           quote.MsgNIF,
		"telemovel":     quote.MsgTelemovel,
		"codigo_postal": quote.MsgCodigoPostal,
		"matricula":     quote.MsgMatricula,
		"categoria":     "Categoria inválida.",
	}, errs)
}

func TestContactoRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		req      models.ContactoRequest
		expected map[string]string
	}{
		{
			name: "válido sem telefone",
			req:  models.ContactoRequest{Nome: "Ana", Email: "ana@exemplo.pt", Mensagem: "Quero saber mais."},
		},
		{
			name: "válido com telefone",
			req:  models.ContactoRequest{Nome: "Ana", Email: "ana@exemplo.pt", Telefone: "+351 (21) 123-4567", Mensagem: "Quero saber mais."},
		},
		{
			name: "email com domínio de topo de uma letra",
			req:  models.ContactoRequest{Nome: "Ana", Email: "a@b.c", Mensagem: "Quero saber mais."},
		},
		{
			name:     "email sem ponto no domínio",
			req:      models.ContactoRequest{Nome: "Ana", Email: "ana@exemplo", Mensagem: "Quero saber mais."},
			expected: map[string]string{"email": "Email inválido!"},
		},
		{
			name: "tudo inválido",
			req:  models.ContactoRequest{Nome: "A", Email: "ana@", Telefone: "12ab", Mensagem: "curta"},
			expected: map[string]string{
				"nome":     "Digite o nome completo!",
				"email":    "Email inválido!",
				"telefone": "Telefone inválido!",
				"mensagem": "Por favor, digite uma mensagem (mínimo 10 caracteres).",
			},
		},
		{
			name: "vazio",
			req:  models.ContactoRequest{},
			expected: map[string]string{
				"nome":     "Digite o nome completo!",
				"email":    "Email inválido!",
				"mensagem": "Por favor, digite uma mensagem (mínimo 10 caracteres).",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.Validate(tt.req))
		})
	}
}

func TestIsContactPhoneValid(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"912345678", true},
		{"+351 912 345 678", true},
		{"(21) 123-4567", true},
		{"12345678", false},
		{"912345678 ext", false},
	}

	for _, test := range tests {
		if result := IsContactPhoneValid(test.input); result != test.expected {
			t.Errorf("IsContactPhoneValid(%q) = %v; expected %v", test.input, result, test.expected)
		}
	}
}

func TestCampoRequest(t *testing.T) {
	v := New()

	assert.Nil(t, v.Validate(models.CampoRequest{Campo: "nif", Valor: "1", Evento: "input"}))

	errs := v.Validate(models.CampoRequest{Evento: "click"})
	assert.Equal(t, quote.MsgRequired, errs["campo"])
	assert.Equal(t, "Valor não permitido.", errs["evento"])
}
