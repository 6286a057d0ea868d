package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoverAcentos remove diacríticos preservando as letras base.
// Exemplo: "Saúde" -> "Saude", "Habitação" -> "Habitacao"
func RemoverAcentos(texto string) string {
	if texto == "" {
		return texto
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	resultado, _, err := transform.String(t, texto)
	if err != nil {
		return texto
	}
	return resultado
}

// NormalizarChave prepara um texto livre para comparação com chaves internas:
// sem acentos, em minúsculas e com espaços colapsados.
// Exemplo: "  Acidentes   Pessoais " -> "acidentes pessoais"
func NormalizarChave(texto string) string {
	texto = strings.ToLower(RemoverAcentos(texto))
	return strings.Join(strings.Fields(texto), " ")
}

// ApenasDigitos descarta tudo o que não for um dígito ASCII.
// Exemplo: "912 345 678" -> "912345678"
func ApenasDigitos(texto string) string {
	var b strings.Builder
	b.Grow(len(texto))
	for _, r := range texto {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RemoverEspacos elimina qualquer espaço em branco, incluindo os interiores.
func RemoverEspacos(texto string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, texto)
}
