package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrEndpointInvalido indica um endpoint configurado que não é um URL http(s) absoluto.
var ErrEndpointInvalido = errors.New("endpoint inválido")

// ValidarEndpoint confirma que o endpoint de envio é um URL http ou https absoluto.
// Um valor vazio é aceite e significa "sem backend".
func ValidarEndpoint(endpoint string) (string, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return "", nil
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEndpointInvalido, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("%w: esquema %q não suportado", ErrEndpointInvalido, parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%w: host em falta", ErrEndpointInvalido)
	}
	return parsed.String(), nil
}

// LinkCategoria devolve o link para o formulário de simulação com a categoria pré-selecionada.
func LinkCategoria(base, categoria string) string {
	q := url.Values{}
	q.Set("cat", categoria)
	return base + "?" + q.Encode() + "#simulacao"
}
